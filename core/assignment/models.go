package assignment

import (
	"strconv"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/jakmauu/tutam9-frontend/core"
)

// Weekday labels, Monday-first. These are wire values owned by the remote
// API, not display strings; do not translate them.
const (
	Senin  = "Senin"
	Selasa = "Selasa"
	Rabu   = "Rabu"
	Kamis  = "Kamis"
	Jumat  = "Jumat"
	Sabtu  = "Sabtu"
	Minggu = "Minggu"
)

var Days = []string{Senin, Selasa, Rabu, Kamis, Jumat, Sabtu, Minggu}

// DayIndex returns the Monday-first index of day, or -1 if day is not a
// known label.
func DayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

func ValidDay(day string) bool {
	return DayIndex(day) >= 0
}

// Today maps t onto the Monday-first weekday set; Go's Sunday (0) becomes
// index 6.
func Today(t time.Time) string {
	idx := int(t.Weekday())
	if idx == 0 {
		idx = 6
	} else {
		idx--
	}
	return Days[idx]
}

// Assignment is the record exchanged with the remote API. The gateway is
// authoritative; any in-memory copy is a cache.
type Assignment struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Subject     string      `json:"subject"`
	Description null.String `json:"description,omitempty"`
	Day         string      `json:"day"`
	StartTime   string      `json:"startTime"` // HH:MM
	EndTime     string      `json:"endTime"`   // HH:MM
	IsCompleted bool        `json:"isCompleted"`
}

// StartHour returns the integer hour of StartTime; malformed times parse
// to 0 and land in the morning bucket.
func (a Assignment) StartHour() int {
	hour, _ := strconv.Atoi(strings.SplitN(a.StartTime, ":", 2)[0])
	return hour
}

// NewAssignment contains information needed to create an Assignment.
// The server assigns the id.
type NewAssignment struct {
	Title       string      `json:"title" validate:"required"`
	Subject     string      `json:"subject" validate:"required"`
	Description null.String `json:"description,omitempty"`
	Day         string      `json:"day" validate:"required,weekday"`
	StartTime   string      `json:"startTime" validate:"required,hhmm"`
	EndTime     string      `json:"endTime" validate:"required,hhmm"`
	IsCompleted bool        `json:"isCompleted"`
}

// Validate checks the draft locally; it never touches the network.
// Callers flatten the returned error with core.FieldErrors.
func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Subject = core.CleanString(na.Subject)
	return core.Validate.Struct(na)
}

// Patch lists the only fields this client ever mutates on an existing
// record; an open-ended partial object would make the update contract
// unauditable.
type Patch struct {
	IsCompleted *bool `json:"isCompleted,omitempty"`
}
