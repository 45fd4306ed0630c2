package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
)

// Service answers summary queries over a fresh snapshot per request, so
// results always reflect server-computed entry pay.
type Service struct {
	loader roster.Loader
	now    func() time.Time
}

func NewService(loader roster.Loader, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{loader: loader, now: now}
}

func (s *Service) horizon() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

// Months lists every covered month, newest first.
func (s *Service) Months(ctx context.Context) ([]string, error) {
	snap, err := s.loader.Load(ctx, s.horizon())
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return Months(snap), nil
}

// ForMonth aggregates every employee active in the month.
func (s *Service) ForMonth(ctx context.Context, month string) ([]MonthSummary, error) {
	snap, err := s.loader.Load(ctx, s.horizon())
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return MonthSummaries(snap, month)
}

// ForEmployee aggregates one employee across every month they overlap.
func (s *Service) ForEmployee(ctx context.Context, name string) ([]MonthSummary, error) {
	snap, err := s.loader.Load(ctx, s.horizon())
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	emp, ok := snap.Employee(name)
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return EmployeeSummaries(snap, emp)
}
