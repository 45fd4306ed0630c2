package entry

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// WorkType is the discriminant of a day's attendance record.
type WorkType string

const (
	// WorkTypeUnset marks a cell with no record and no expectation,
	// e.g. a Sunday nobody filled in.
	WorkTypeUnset       WorkType = ""
	WorkTypeFullDay     WorkType = "FULL_DAY"
	WorkTypeHalfDay     WorkType = "HALF_DAY"
	WorkTypeCustom      WorkType = "CUSTOM"
	WorkTypeCustomHours WorkType = "CUSTOM_HOURS"
	WorkTypeLeave       WorkType = "LEAVE"
)

func (t WorkType) Valid() bool {
	switch t {
	case WorkTypeUnset, WorkTypeFullDay, WorkTypeHalfDay, WorkTypeCustom, WorkTypeCustomHours, WorkTypeLeave:
		return true
	}
	return false
}

// WorkDetail is a work type plus the payload that belongs to it.
// Only CUSTOM carries start/end times and only CUSTOM_HOURS carries hours.
type WorkDetail struct {
	Type      WorkType `json:"type"`
	StartTime string   `json:"start_time,omitempty"`
	EndTime   string   `json:"end_time,omitempty"`
	Hours     float64  `json:"hours,omitempty"`
}

// Normalize clears any payload the current type does not own.
func (d WorkDetail) Normalize() WorkDetail {
	if d.Type != WorkTypeCustom {
		d.StartTime = ""
		d.EndTime = ""
	}
	if d.Type != WorkTypeCustomHours {
		d.Hours = 0
	}
	return d
}

// Validate checks the payload against the type.
func (d WorkDetail) Validate() error {
	var errs validator.ValidationErrors

	if !d.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown work type"})
		return errs
	}

	switch d.Type {
	case WorkTypeCustom:
		if !validator.IsValidClock(d.StartTime) {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time is required for CUSTOM work type"})
		}
		if !validator.IsValidClock(d.EndTime) {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time is required for CUSTOM work type"})
		}
		if len(errs) == 0 && d.EndTime <= d.StartTime {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be after start time"})
		}
	case WorkTypeCustomHours:
		if !validator.IsValidEntryHours(d.Hours) {
			errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 0 and 24"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Span returns the CUSTOM start-to-end span in hours.
func (d WorkDetail) Span() float64 {
	if d.Type != WorkTypeCustom {
		return 0
	}
	start, err := time.Parse("15:04", d.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", d.EndTime)
	if err != nil {
		return 0
	}
	span := end.Sub(start).Hours()
	if span < 0 {
		return 0
	}
	return span
}

// WorkPatch is a partial update to a WorkDetail. Nil fields are left alone.
type WorkPatch struct {
	Type      *WorkType `json:"type,omitempty"`
	StartTime *string   `json:"start_time,omitempty"`
	EndTime   *string   `json:"end_time,omitempty"`
	Hours     *float64  `json:"hours,omitempty"`
}

// Apply merges the patch and normalizes the result, so switching a cell
// away from CUSTOM or CUSTOM_HOURS drops the stale payload.
func (d WorkDetail) Apply(p WorkPatch) WorkDetail {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.StartTime != nil {
		d.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		d.EndTime = *p.EndTime
	}
	if p.Hours != nil {
		d.Hours = *p.Hours
	}
	return d.Normalize()
}
