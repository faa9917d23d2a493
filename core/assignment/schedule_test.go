package assignment

import (
	"reflect"
	"testing"
)

func hhmm(id, start string) Assignment {
	return Assignment{ID: id, Title: "T" + id, Subject: "S", Day: Senin, StartTime: start, EndTime: "23:59"}
}

func bucketIDs(assignments []Assignment) []string {
	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestBuildSchedule_buckets(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		morning   bool
		afternoon bool
		evening   bool
	}{
		{name: "midnight", start: "00:00", morning: true},
		{name: "late morning", start: "11:59", morning: true},
		{name: "noon boundary", start: "12:00", afternoon: true},
		{name: "last afternoon minute", start: "16:59", afternoon: true},
		{name: "evening boundary", start: "17:00", evening: true},
		{name: "late evening", start: "23:00", evening: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := BuildSchedule([]Assignment{hhmm("1", tt.start)})
			if got := len(sched.Morning) == 1; got != tt.morning {
				t.Errorf("morning contains record = %v, want %v", got, tt.morning)
			}
			if got := len(sched.Afternoon) == 1; got != tt.afternoon {
				t.Errorf("afternoon contains record = %v, want %v", got, tt.afternoon)
			}
			if got := len(sched.Evening) == 1; got != tt.evening {
				t.Errorf("evening contains record = %v, want %v", got, tt.evening)
			}
			if got := len(sched.Flatten()); got != 1 {
				t.Errorf("record appears in %d buckets, want exactly 1", got)
			}
		})
	}
}

func TestBuildSchedule_sortsWithinBuckets(t *testing.T) {
	input := []Assignment{
		hhmm("1", "10:30"),
		hhmm("2", "08:00"),
		hhmm("3", "18:00"),
		hhmm("4", "13:15"),
		hhmm("5", "17:00"),
		hhmm("6", "08:00"), // tie with "2"; input order must hold
		hhmm("7", "12:00"),
	}
	sched := BuildSchedule(input)

	if want := []string{"2", "6", "1"}; !reflect.DeepEqual(bucketIDs(sched.Morning), want) {
		t.Errorf("Morning = %v, want %v", bucketIDs(sched.Morning), want)
	}
	if want := []string{"7", "4"}; !reflect.DeepEqual(bucketIDs(sched.Afternoon), want) {
		t.Errorf("Afternoon = %v, want %v", bucketIDs(sched.Afternoon), want)
	}
	if want := []string{"5", "3"}; !reflect.DeepEqual(bucketIDs(sched.Evening), want) {
		t.Errorf("Evening = %v, want %v", bucketIDs(sched.Evening), want)
	}

	// ascending order within each bucket
	for _, bucket := range [][]Assignment{sched.Morning, sched.Afternoon, sched.Evening} {
		for i := 1; i < len(bucket); i++ {
			if bucket[i-1].StartTime > bucket[i].StartTime {
				t.Errorf("bucket out of order: %s before %s", bucket[i-1].StartTime, bucket[i].StartTime)
			}
		}
	}
}

func TestBuildSchedule_idempotent(t *testing.T) {
	input := []Assignment{
		hhmm("1", "19:45"),
		hhmm("2", "07:30"),
		hhmm("3", "12:00"),
		hhmm("4", "07:30"),
		hhmm("5", "16:59"),
	}
	first := BuildSchedule(input)
	second := BuildSchedule(first.Flatten())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("regrouping a grouped schedule changed it:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestBuildSchedule_doesNotMutateInput(t *testing.T) {
	input := []Assignment{hhmm("1", "10:30"), hhmm("2", "08:00")}
	BuildSchedule(input)
	if input[0].ID != "1" || input[1].ID != "2" {
		t.Errorf("input reordered: %v", bucketIDs(input))
	}
}

func TestSummarize(t *testing.T) {
	done := hhmm("1", "08:00")
	done.IsCompleted = true
	sum := Summarize([]Assignment{done, hhmm("2", "09:00"), hhmm("3", "10:00")})

	if sum.Total != 3 || sum.Completed != 1 || sum.Pending != 2 {
		t.Errorf("Summarize() = %+v, want {Total:3 Completed:1 Pending:2}", sum)
	}
	if got := sum.CompletionRate(); got != 33 {
		t.Errorf("CompletionRate() = %d, want 33", got)
	}
	if got := (Summary{}).CompletionRate(); got != 0 {
		t.Errorf("empty CompletionRate() = %d, want 0", got)
	}
}
