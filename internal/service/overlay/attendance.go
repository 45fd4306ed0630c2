package overlay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/service/timeline"
)

// AttendanceCommitter persists one staged attendance cell.
type AttendanceCommitter interface {
	CommitCell(ctx context.Context, employeeName string, date time.Time, detail entry.WorkDetail) error
}

// AttendanceTableID names the month-by-department attendance grid.
func AttendanceTableID(month, dept string) string {
	return "table-" + month + "-" + dept
}

// SplitAttendanceTableID is the inverse of AttendanceTableID. The month key
// has a fixed width, which keeps department names with dashes unambiguous.
func SplitAttendanceTableID(tableID string) (month, dept string, ok bool) {
	rest, found := strings.CutPrefix(tableID, "table-")
	if !found || len(rest) < 9 || rest[7] != '-' {
		return "", "", false
	}
	month, dept = rest[:7], rest[8:]
	if _, err := time.Parse("2006-01", month); err != nil {
		return "", "", false
	}
	return month, dept, true
}

// AttendanceCellKey joins employee name and date. Names may contain dashes,
// so the separator is a pipe.
func AttendanceCellKey(name string, date time.Time) string {
	return name + "|" + date.Format("2006-01-02")
}

// SplitAttendanceCellKey is the inverse of AttendanceCellKey.
func SplitAttendanceCellKey(key string) (string, time.Time, error) {
	idx := strings.LastIndex(key, "|")
	if idx < 1 {
		return "", time.Time{}, fmt.Errorf("malformed cell key %q", key)
	}
	date, err := time.Parse("2006-01-02", key[idx+1:])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed cell key %q: %w", key, err)
	}
	return key[:idx], date, nil
}

// AttendanceGrid overlays one month-by-department attendance table.
type AttendanceGrid struct {
	*Manager[entry.WorkDetail, entry.WorkPatch]
}

// NewAttendanceGrid builds the overlay. Editable cells merge work patches
// with the payload-reset rules of entry.WorkDetail; cells whose staged type
// is still unset are skipped on save.
func NewAttendanceGrid(committer AttendanceCommitter, afterSave func(ctx context.Context)) *AttendanceGrid {
	return &AttendanceGrid{
		Manager: NewManager(Config[entry.WorkDetail, entry.WorkPatch]{
			Merge: entry.WorkDetail.Apply,
			Validate: func(d entry.WorkDetail) error {
				return d.Validate()
			},
			Skip: func(d entry.WorkDetail) bool {
				return d.Type == entry.WorkTypeUnset
			},
			Commit: func(ctx context.Context, _ string, key string, d entry.WorkDetail) error {
				name, date, err := SplitAttendanceCellKey(key)
				if err != nil {
					return err
				}
				return committer.CommitCell(ctx, name, date, d)
			},
			AfterSave: afterSave,
		}),
	}
}

// BuildAttendanceCells snapshots the currently derived value of every
// editable cell in the month's grid for one department. Holiday rows and
// days outside an employee's active window are not editable and carry no
// cell.
func BuildAttendanceCells(snap roster.Snapshot, month, dept string) (map[string]entry.WorkDetail, error) {
	monthStart, monthEnd, err := timeline.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	cal := timeline.NewCalendar(snap)
	cells := make(map[string]entry.WorkDetail)

	for _, emp := range snap.Employees {
		if emp.Department != dept || !emp.ActiveInRange(monthStart, monthEnd) {
			continue
		}
		for day := monthStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
			status := cal.DeriveStatus(day, emp, emp.EntryOn(day))
			switch status.Kind {
			case timeline.DayHoliday, timeline.DayInactive:
				continue
			case timeline.DayWorked:
				cells[AttendanceCellKey(emp.Name, day)] = status.Detail
			case timeline.DayUnset:
				cells[AttendanceCellKey(emp.Name, day)] = entry.WorkDetail{}
			}
		}
	}

	return cells, nil
}

// StartMonth opens an edit buffer seeded from the snapshot.
func (g *AttendanceGrid) StartMonth(snap roster.Snapshot, month, dept string) error {
	cells, err := BuildAttendanceCells(snap, month, dept)
	if err != nil {
		return err
	}
	return g.Start(AttendanceTableID(month, dept), cells)
}
