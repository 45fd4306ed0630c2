package overlay

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// State of one table: VIEW means no buffer exists, EDIT means one does.
type State string

const (
	StateView State = "view"
	StateEdit State = "edit"
)

// Overlay errors
var (
	ErrAlreadyEditing = errors.New("table already has an open edit buffer")
	ErrNotEditing     = errors.New("table is not in edit mode")
	ErrUnknownCell    = errors.New("cell is not part of the edit buffer")
)

// CellError reports one cell that failed validation or commit during a save
// pass. The remaining cells are unaffected.
type CellError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Config wires a Manager to one kind of grid. Merge applies a partial update
// to a buffered value. Validate gates a cell before commit. Skip, when set,
// silently drops cells with nothing to commit. Commit persists one cell.
// AfterSave, when set, runs once a save pass has finished, whatever the
// per-cell outcomes were; it is the refresh trigger.
type Config[V any, P any] struct {
	Merge     func(V, P) V
	Validate  func(V) error
	Skip      func(V) bool
	Commit    func(ctx context.Context, tableID, key string, value V) error
	AfterSave func(ctx context.Context)
}

// Manager is the edit-buffer state machine. Each tableID independently moves
// between VIEW and EDIT; a single tableID has at most one open buffer.
// Cancel discards staged values only; commits already issued by an earlier
// save cannot be retracted.
type Manager[V any, P any] struct {
	mu      sync.Mutex
	cfg     Config[V, P]
	buffers map[string]map[string]V
}

func NewManager[V any, P any](cfg Config[V, P]) *Manager[V, P] {
	return &Manager[V, P]{
		cfg:     cfg,
		buffers: make(map[string]map[string]V),
	}
}

// StateOf reports the table's current state.
func (m *Manager[V, P]) StateOf(tableID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buffers[tableID]; ok {
		return StateEdit
	}
	return StateView
}

// Buffer returns a copy of the open buffer, if any.
func (m *Manager[V, P]) Buffer(tableID string) (map[string]V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf, ok := m.buffers[tableID]
	if !ok {
		return nil, false
	}
	out := make(map[string]V, len(buf))
	for k, v := range buf {
		out[k] = v
	}
	return out, true
}

// Start snapshots the given cells into a fresh buffer and moves the table
// to EDIT.
func (m *Manager[V, P]) Start(tableID string, cells map[string]V) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buffers[tableID]; ok {
		return ErrAlreadyEditing
	}
	buf := make(map[string]V, len(cells))
	for k, v := range cells {
		buf[k] = v
	}
	m.buffers[tableID] = buf
	return nil
}

// Mutate merges a partial update into one buffered cell.
func (m *Manager[V, P]) Mutate(tableID, key string, patch P) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf, ok := m.buffers[tableID]
	if !ok {
		return ErrNotEditing
	}
	current, ok := buf[key]
	if !ok {
		return ErrUnknownCell
	}
	buf[key] = m.cfg.Merge(current, patch)
	return nil
}

// Save validates and commits every buffered cell, one at a time. A cell that
// fails validation or commit is reported and the pass moves on; cells already
// committed stay committed. The buffer is discarded afterwards regardless,
// the table returns to VIEW, and AfterSave fires.
func (m *Manager[V, P]) Save(ctx context.Context, tableID string) ([]CellError, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf, ok := m.buffers[tableID]
	if !ok {
		return nil, ErrNotEditing
	}

	keys := make([]string, 0, len(buf))
	for k := range buf {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var cellErrs []CellError
	for _, key := range keys {
		value := buf[key]
		if m.cfg.Skip != nil && m.cfg.Skip(value) {
			continue
		}
		if err := m.cfg.Validate(value); err != nil {
			cellErrs = append(cellErrs, CellError{Key: key, Message: err.Error()})
			continue
		}
		if err := m.cfg.Commit(ctx, tableID, key, value); err != nil {
			cellErrs = append(cellErrs, CellError{Key: key, Message: err.Error()})
			continue
		}
	}

	delete(m.buffers, tableID)
	if m.cfg.AfterSave != nil {
		m.cfg.AfterSave(ctx)
	}
	return cellErrs, nil
}

// Cancel discards the buffer without committing anything.
func (m *Manager[V, P]) Cancel(tableID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buffers[tableID]; !ok {
		return ErrNotEditing
	}
	delete(m.buffers, tableID)
	return nil
}
