package assignment

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/jakmauu/tutam9-frontend/core"
)

var nowFunc = time.Now // mockable

// Display messages surfaced next to a failed operation; the cache itself
// is never left diverged from the last confirmed server state.
const (
	errLoadAssignments = "Failed to load assignments. Please try again."
	errSaveAssignment  = "Failed to save assignment. Please try again."
)

// Gateway is the remote service owning the assignment data. All reads and
// writes go through it; the board only caches.
type Gateway interface {
	ListAssignments(ctx context.Context) ([]Assignment, error)
	ListAssignmentsByDay(ctx context.Context, day string) ([]Assignment, error)
	CreateAssignment(ctx context.Context, draft NewAssignment) (Assignment, error)
	PatchAssignment(ctx context.Context, id string, patch Patch) (Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
	SearchAssignments(ctx context.Context, query string) ([]Assignment, error)
}

// Board drives the day view: it tracks the selected day, holds the cached
// assignment list for that day and runs the create/toggle/delete contracts
// against the Gateway.
//
// Rapid day switching may leave an older fetch in flight; every fetch is
// stamped with a generation and a stale response is dropped on arrival, so
// the cache only ever reflects the currently selected day.
type Board struct {
	gw  Gateway
	log core.Logger

	mu          sync.Mutex
	selectedDay string
	previousDay string
	assignments []Assignment
	loading     bool
	errMsg      string
	armedID     string // id of the record awaiting delete confirmation
	gen         uint64
}

func NewBoard(gw Gateway, log core.Logger) *Board {
	day := Today(nowFunc())
	return &Board{
		gw:          gw,
		log:         log,
		selectedDay: day,
		previousDay: day,
	}
}

// SelectDay switches the board to day and fetches its assignments. The
// previous day's cache is discarded up front, not merged.
func (b *Board) SelectDay(ctx context.Context, day string) error {
	if !ValidDay(day) {
		return errors.Errorf("unknown day %q", day)
	}
	b.mu.Lock()
	b.previousDay = b.selectedDay
	b.selectedDay = day
	b.assignments = nil
	b.armedID = ""
	b.errMsg = ""
	b.loading = true
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	return b.fetch(ctx, day, gen)
}

// Refresh re-fetches the currently selected day.
func (b *Board) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.armedID = ""
	b.errMsg = ""
	b.loading = true
	b.gen++
	day, gen := b.selectedDay, b.gen
	b.mu.Unlock()

	return b.fetch(ctx, day, gen)
}

func (b *Board) fetch(ctx context.Context, day string, gen uint64) error {
	recs, err := b.gw.ListAssignmentsByDay(ctx, day)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen {
		// a newer fetch owns the cache now; drop this response
		return nil
	}
	b.loading = false
	if err != nil {
		b.assignments = []Assignment{}
		b.errMsg = errLoadAssignments
		b.log.Error("fetching assignments", errors.Wrap(err, day))
		return errors.Wrap(err, "fetching assignments for "+day)
	}
	b.assignments = recs
	return nil
}

// Create validates draft locally first; field errors are returned as a
// {field: message} map and no network call is made. On gateway success the
// returned record (with its server-assigned id) is appended to the cache
// without a refetch.
func (b *Board) Create(ctx context.Context, draft NewAssignment) (map[string]string, error) {
	b.Disarm()

	if err := draft.Validate(); err != nil {
		if fldErrs := core.FieldErrors(err); len(fldErrs) > 0 {
			return fldErrs, nil
		}
		return nil, err
	}

	created, err := b.gw.CreateAssignment(ctx, draft)
	if err != nil {
		b.setErr(errSaveAssignment)
		b.log.Error("creating assignment", err)
		return nil, errors.Wrap(err, "creating assignment")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if created.Day == b.selectedDay {
		b.assignments = append(b.assignments, created)
	}
	return nil, nil
}

// ToggleComplete patches isCompleted on the server and, only after
// success, flips it on the cached record; no other fields are touched.
func (b *Board) ToggleComplete(ctx context.Context, id string, done bool) error {
	b.Disarm()

	if _, err := b.gw.PatchAssignment(ctx, id, Patch{IsCompleted: &done}); err != nil {
		b.setErr(errSaveAssignment)
		b.log.Error("updating assignment", errors.Wrap(err, id))
		return errors.Wrap(err, "updating assignment")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.assignments {
		if b.assignments[i].ID == id {
			b.assignments[i].IsCompleted = done
			break
		}
	}
	return nil
}

// Delete requires two calls on the same id: the first arms a confirmation
// and does not contact the gateway; the second performs the delete. Arming
// a different id, or any other board interaction, resets the arm state.
// Gateway failure leaves the record in place, disarmed.
func (b *Board) Delete(ctx context.Context, id string) (bool, error) {
	b.mu.Lock()
	if b.armedID != id {
		b.armedID = id
		b.mu.Unlock()
		return false, nil
	}
	b.armedID = ""
	b.mu.Unlock()

	if err := b.gw.DeleteAssignment(ctx, id); err != nil {
		b.setErr(errSaveAssignment)
		b.log.Error("deleting assignment", errors.Wrap(err, id))
		return false, errors.Wrap(err, "deleting assignment")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.assignments[:0]
	for _, a := range b.assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	b.assignments = kept
	return true, nil
}

// Search queries the gateway across all days; the day cache is unaffected.
func (b *Board) Search(ctx context.Context, query string) ([]Assignment, error) {
	b.Disarm()
	recs, err := b.gw.SearchAssignments(ctx, core.CleanString(query))
	if err != nil {
		b.log.Error("searching assignments", err)
		return nil, errors.Wrap(err, "searching assignments")
	}
	return recs, nil
}

// Disarm resets any pending delete confirmation.
func (b *Board) Disarm() {
	b.mu.Lock()
	b.armedID = ""
	b.mu.Unlock()
}

func (b *Board) setErr(msg string) {
	b.mu.Lock()
	b.errMsg = msg
	b.mu.Unlock()
}

// Accessors

func (b *Board) Day() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedDay
}

func (b *Board) PreviousDay() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.previousDay
}

// Direction reports which way the last day switch moved: 1 forward,
// -1 backward, 0 for the same day.
func (b *Board) Direction() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev, curr := DayIndex(b.previousDay), DayIndex(b.selectedDay)
	switch {
	case prev < curr:
		return 1
	case prev > curr:
		return -1
	}
	return 0
}

func (b *Board) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *Board) Err() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}

// Armed returns the id awaiting delete confirmation, if any.
func (b *Board) Armed() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.armedID
}

// Assignments returns a copy of the cached list for the selected day.
func (b *Board) Assignments() []Assignment {
	b.mu.Lock()
	defer b.mu.Unlock()
	recs := make([]Assignment, len(b.assignments))
	copy(recs, b.assignments)
	return recs
}

// Schedule returns the cached list grouped into display buckets.
func (b *Board) Schedule() Schedule {
	return BuildSchedule(b.Assignments())
}

func (b *Board) Summary() Summary {
	return Summarize(b.Assignments())
}
