package assignment

import (
	"github.com/go-playground/validator/v10"

	"github.com/jakmauu/tutam9-frontend/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "must be one of the weekday labels"

	endAfterStartTag  = "endafterstart"
	endAfterStartText = "end time must be after start time"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(weekdayTag, weekdayText)

	core.Validate.RegisterStructValidation(newAssignmentStructValidation, NewAssignment{})
	core.RegisterCustomTranslation(endAfterStartTag, endAfterStartText)
}

// Custom Validators

// weekdayValidation checks that the provided day is in Days.
func weekdayValidation(fl validator.FieldLevel) bool {
	return ValidDay(fl.Field().String())
}

// newAssignmentStructValidation enforces endTime > startTime whenever both
// are present. HH:MM is zero-padded so the lexicographic comparison is the
// chronological one.
func newAssignmentStructValidation(sl validator.StructLevel) {
	na := sl.Current().Interface().(NewAssignment)
	if na.StartTime != "" && na.EndTime != "" && na.EndTime <= na.StartTime {
		sl.ReportError(na.EndTime, "endTime", "EndTime", endAfterStartTag, "")
	}
}
