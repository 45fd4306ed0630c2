package backfill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	entrysvc "github.com/stafftrack/attendance-backend-go/internal/service/entry"
	"github.com/stafftrack/attendance-backend-go/internal/service/timeline"
)

// Failure is one creation request that could not be written; the rest of
// the pass is unaffected.
type Failure struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Message      string `json:"message"`
}

// Result summarizes one backfill pass.
type Result struct {
	Created  int       `json:"created"`
	Failures []Failure `json:"failures,omitempty"`
}

// Service walks each employee's active window and creates FULL_DAY
// placeholder entries for working days that have none. Re-running against
// a fresh snapshot creates nothing new.
type Service struct {
	entries entry.Repository
}

func NewService(entries entry.Repository) *Service {
	return &Service{entries: entries}
}

// Run executes one best-effort pass over the snapshot. Each creation
// request is independent: a failure is recorded and the walk continues.
func (s *Service) Run(ctx context.Context, snap roster.Snapshot) Result {
	cal := timeline.NewCalendar(snap)
	result := Result{}

	for _, emp := range snap.Employees {
		last := snap.Horizon
		if emp.EndDate != nil && emp.EndDate.Before(last) {
			last = *emp.EndDate
		}

		// Walk whole calendar months so month lengths and year
		// boundaries take care of themselves.
		cursor := timeline.Date(emp.StartDate.Year(), emp.StartDate.Month(), 1)
		for !cursor.After(last) {
			monthEnd := cursor.AddDate(0, 1, -1)
			stop := monthEnd
			if last.Before(stop) {
				stop = last
			}

			for day := cursor; !day.After(stop); day = day.AddDate(0, 0, 1) {
				if !cal.IsWorkingDay(day, emp) {
					continue
				}
				if emp.EntryOn(day) != nil {
					continue
				}

				placeholder, err := entrysvc.Build(snap, emp, day, entry.WorkDetail{Type: entry.WorkTypeFullDay})
				if err == nil {
					_, err = s.entries.Create(ctx, placeholder)
				}
				if err != nil {
					if errors.Is(err, entry.ErrEntryExists) {
						// Someone beat us to it since the snapshot was taken.
						continue
					}
					slog.Error("backfill: entry creation failed",
						"employee", emp.Name,
						"date", day.Format("2006-01-02"),
						"error", err,
					)
					result.Failures = append(result.Failures, Failure{
						EmployeeName: emp.Name,
						Date:         day.Format("2006-01-02"),
						Message:      err.Error(),
					})
					continue
				}
				result.Created++
			}

			cursor = cursor.AddDate(0, 1, 0)
		}
	}

	return result
}

// RunWithLoader snapshots the store at now and runs one pass.
func (s *Service) RunWithLoader(ctx context.Context, loader roster.Loader, now time.Time) (Result, error) {
	snap, err := loader.Load(ctx, now)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load snapshot for backfill: %w", err)
	}
	return s.Run(ctx, snap), nil
}
