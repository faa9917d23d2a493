package main

import (
	"fmt"

	"github.com/labstack/gommon/color"

	"github.com/jakmauu/tutam9-frontend/core/assignment"
)

// renderDay redraws the current day's schedule grouped by time of day and
// refreshes the numbering used by done/undo/rm.
func (cli *commandLine) renderDay() {
	sched := cli.board.Schedule()
	cli.visible = sched.Flatten()

	fmt.Fprintf(cli.out, "\n%s\n", color.Bold(cli.board.Day()))
	if msg := cli.board.Err(); msg != "" {
		fmt.Fprintln(cli.out, color.Red(msg))
	}
	if len(cli.visible) == 0 {
		fmt.Fprintln(cli.out, "No assignments for this day.")
		return
	}

	n := 0
	cli.renderBucket("Morning", sched.Morning, &n)
	cli.renderBucket("Afternoon", sched.Afternoon, &n)
	cli.renderBucket("Evening", sched.Evening, &n)
}

func (cli *commandLine) renderBucket(name string, recs []assignment.Assignment, n *int) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(cli.out, "%s (%d)\n", color.Underline(name), len(recs))
	for _, rec := range recs {
		*n++
		cli.renderCard(*n, rec)
	}
}

func (cli *commandLine) renderCard(n int, rec assignment.Assignment) {
	mark := " "
	if rec.IsCompleted {
		mark = color.Green("x")
	}
	line := fmt.Sprintf("%3d. [%s] %s-%s  %s (%s)", n, mark, rec.StartTime, rec.EndTime, rec.Title, rec.Subject)
	if rec.Description.Valid {
		line += "  - " + rec.Description.String
	}
	if rec.ID == cli.board.Armed() {
		line += "  " + color.Red("[delete pending]")
	}
	fmt.Fprintln(cli.out, line)
}

func (cli *commandLine) renderSummary() {
	sum := cli.board.Summary()
	fmt.Fprintf(cli.out, "%s: %d total, %d done, %d pending (%d%%)\n",
		cli.board.Day(), sum.Total, sum.Completed, sum.Pending, sum.CompletionRate())
}

// renderSearchResults lists matches across all days; they are not
// numbered because planner commands only address the current day.
func (cli *commandLine) renderSearchResults(query string, recs []assignment.Assignment) {
	if len(recs) == 0 {
		fmt.Fprintf(cli.out, "No assignments match %q.\n", query)
		return
	}
	fmt.Fprintf(cli.out, "%d assignments match %q:\n", len(recs), query)
	for _, rec := range recs {
		fmt.Fprintf(cli.out, "  %s %s-%s  %s (%s)\n", rec.Day, rec.StartTime, rec.EndTime, rec.Title, rec.Subject)
	}
}

func (cli *commandLine) renderFieldErrors(fldErrs map[string]string) {
	fmt.Fprintln(cli.out, color.Red("Please fix the following:"))
	for _, fld := range []string{"username", "email", "password", "title", "subject", "day", "startTime", "endTime"} {
		if msg, ok := fldErrs[fld]; ok {
			fmt.Fprintf(cli.out, "  %s: %s\n", fld, msg)
			delete(fldErrs, fld)
		}
	}
	for fld, msg := range fldErrs {
		fmt.Fprintf(cli.out, "  %s: %s\n", fld, msg)
	}
}
