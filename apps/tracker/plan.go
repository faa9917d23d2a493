package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/jakmauu/tutam9-frontend/core/assignment"
	"github.com/jakmauu/tutam9-frontend/services/gateway"
)

const planHelp = `Planner commands:
  day DAY      - switch to DAY (Senin..Minggu)
  next / prev  - switch to the adjacent day
  list         - redraw the current day
  reload       - refetch the current day from the server
  add          - create an assignment (fields are prompted)
  done N       - mark assignment N completed
  undo N       - mark assignment N pending again
  rm N         - delete assignment N; repeat to confirm
  search TEXT  - find assignments across all days
  summary      - completion stats for the current day
  help         - show this help
  quit         - leave the planner`

// plan runs the interactive day planner until quit or EOF.
func (cli *commandLine) plan(ctx context.Context, day string) error {
	if !cli.sess.Authenticated() {
		return errNotLoggedIn
	}

	if day == "" {
		day = cli.board.Day()
	}
	if err := cli.board.SelectDay(ctx, day); err != nil && cli.board.Err() == "" {
		return err
	}
	cli.renderDay()

	sc := bufio.NewScanner(cli.in)
	for {
		fmt.Fprint(cli.out, "> ")
		if !sc.Scan() {
			break
		}
		cmd, arg := splitCommand(sc.Text())

		switch cmd {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Fprintln(cli.out, "Bye.")
			return nil
		case "help":
			fmt.Fprintln(cli.out, planHelp)
		case "day":
			if err := cli.board.SelectDay(ctx, arg); err != nil && cli.board.Err() == "" {
				// bad day label; fetch failures are rendered with the day
				fmt.Fprintln(cli.out, err)
				continue
			}
			cli.renderDay()
		case "next", "prev":
			cli.shiftDay(ctx, cmd)
		case "list":
			cli.renderDay()
		case "reload":
			if err := cli.board.Refresh(ctx); err != nil {
				fmt.Fprintln(cli.out, cli.board.Err())
				continue
			}
			cli.renderDay()
		case "add":
			if cli.sessionLost(cli.addAssignment(ctx, sc)) {
				return errNotLoggedIn
			}
		case "done", "undo":
			if cli.sessionLost(cli.toggle(ctx, arg, cmd == "done")) {
				return errNotLoggedIn
			}
		case "rm":
			if cli.sessionLost(cli.remove(ctx, arg)) {
				return errNotLoggedIn
			}
		case "search":
			if cli.sessionLost(cli.search(ctx, arg)) {
				return errNotLoggedIn
			}
		case "summary":
			cli.renderSummary()
		default:
			fmt.Fprintf(cli.out, "Unknown command %q; type help for the command list.\n", cmd)
		}
	}
	return sc.Err()
}

// sessionLost clears the session when the gateway rejected our token; the
// planner cannot continue without credentials.
func (cli *commandLine) sessionLost(err error) bool {
	if err == nil || !gateway.IsAuthError(err) {
		return false
	}
	if ident, ok := cli.sess.Current(); ok {
		cli.log.Warn("token rejected by the gateway", err, ident)
	}
	_ = cli.sess.Clear()
	fmt.Fprintln(cli.out, "Session expired; please log in again.")
	return true
}

func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func (cli *commandLine) shiftDay(ctx context.Context, dir string) {
	idx := assignment.DayIndex(cli.board.Day())
	if idx < 0 {
		idx = 0
	}
	n := len(assignment.Days)
	if dir == "next" {
		idx = (idx + 1) % n
	} else {
		idx = (idx + n - 1) % n
	}
	_ = cli.board.SelectDay(ctx, assignment.Days[idx]) // failure is rendered from board state
	cli.renderDay()
}

// addAssignment prompts for each field, validates locally and reports
// field errors without contacting the server.
func (cli *commandLine) addAssignment(ctx context.Context, sc *bufio.Scanner) error {
	prompt := func(label string) string {
		fmt.Fprintf(cli.out, "%s: ", label)
		if !sc.Scan() {
			return ""
		}
		return strings.TrimSpace(sc.Text())
	}

	draft := assignment.NewAssignment{
		Title:     prompt("Title"),
		Subject:   prompt("Subject"),
		Day:       cli.board.Day(),
		StartTime: prompt("Start time (HH:MM)"),
		EndTime:   prompt("End time (HH:MM)"),
	}
	if desc := prompt("Description (optional)"); desc != "" {
		draft.Description = null.StringFrom(desc)
	}

	fldErrs, err := cli.board.Create(ctx, draft)
	if len(fldErrs) > 0 {
		cli.renderFieldErrors(fldErrs)
		return nil
	}
	if err != nil {
		fmt.Fprintln(cli.out, cli.board.Err())
		return err
	}
	fmt.Fprintln(cli.out, "Added.")
	cli.renderDay()
	return nil
}

// pick resolves a 1-based number from the last rendered listing.
func (cli *commandLine) pick(arg string) (assignment.Assignment, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(cli.visible) {
		fmt.Fprintf(cli.out, "Pick a number between 1 and %d.\n", len(cli.visible))
		return assignment.Assignment{}, false
	}
	return cli.visible[n-1], true
}

func (cli *commandLine) toggle(ctx context.Context, arg string, done bool) error {
	rec, ok := cli.pick(arg)
	if !ok {
		return nil
	}
	if err := cli.board.ToggleComplete(ctx, rec.ID, done); err != nil {
		fmt.Fprintln(cli.out, cli.board.Err())
		return err
	}
	cli.renderDay()
	return nil
}

func (cli *commandLine) remove(ctx context.Context, arg string) error {
	rec, ok := cli.pick(arg)
	if !ok {
		return nil
	}
	deleted, err := cli.board.Delete(ctx, rec.ID)
	if err != nil {
		fmt.Fprintln(cli.out, cli.board.Err())
		return err
	}
	if !deleted {
		fmt.Fprintf(cli.out, "Repeat \"rm %s\" to delete %q.\n", arg, rec.Title)
		return nil
	}
	fmt.Fprintf(cli.out, "Deleted %q.\n", rec.Title)
	cli.renderDay()
	return nil
}

func (cli *commandLine) search(ctx context.Context, query string) error {
	if query == "" {
		fmt.Fprintln(cli.out, "Usage: search TEXT")
		return nil
	}
	recs, err := cli.board.Search(ctx, query)
	if err != nil {
		fmt.Fprintln(cli.out, "Search failed. Please try again.")
		return err
	}
	cli.renderSearchResults(query, recs)
	return nil
}
