package assignment

import (
	"math"
	"sort"
)

// Bucket boundaries by start hour.
const (
	afternoonHour = 12
	eveningHour   = 17
)

// Schedule is the display-ready view of one day: assignments partitioned
// into time-of-day buckets, each sorted ascending by start time.
type Schedule struct {
	Morning   []Assignment `json:"morning"`
	Afternoon []Assignment `json:"afternoon"`
	Evening   []Assignment `json:"evening"`
}

// BuildSchedule partitions assignments by the integer hour of their start
// time (morning < 12 <= afternoon < 17 <= evening) and sorts each bucket.
// It is a pure function: ties keep their input order and the input slice is
// left untouched.
func BuildSchedule(assignments []Assignment) Schedule {
	var sched Schedule
	for _, a := range assignments {
		switch hour := a.StartHour(); {
		case hour < afternoonHour:
			sched.Morning = append(sched.Morning, a)
		case hour < eveningHour:
			sched.Afternoon = append(sched.Afternoon, a)
		default:
			sched.Evening = append(sched.Evening, a)
		}
	}
	sortByStartTime(sched.Morning)
	sortByStartTime(sched.Afternoon)
	sortByStartTime(sched.Evening)
	return sched
}

// sortByStartTime sorts in place, ascending by the HH:MM string; zero
// padding makes lexicographic order chronological.
func sortByStartTime(assignments []Assignment) {
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].StartTime < assignments[j].StartTime
	})
}

// Flatten returns the buckets back as a single list, morning first.
func (s Schedule) Flatten() []Assignment {
	flat := make([]Assignment, 0, len(s.Morning)+len(s.Afternoon)+len(s.Evening))
	flat = append(flat, s.Morning...)
	flat = append(flat, s.Afternoon...)
	flat = append(flat, s.Evening...)
	return flat
}

// Summary carries the per-day completion counters.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

func Summarize(assignments []Assignment) Summary {
	sum := Summary{Total: len(assignments)}
	for _, a := range assignments {
		if a.IsCompleted {
			sum.Completed++
		}
	}
	sum.Pending = sum.Total - sum.Completed
	return sum
}

// CompletionRate returns the completed percentage, rounded; 0 when empty.
func (s Summary) CompletionRate() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
}
