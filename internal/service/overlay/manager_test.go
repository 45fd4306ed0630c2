package overlay

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A minimal grid of string cells for exercising the state machine itself.
type stringPatch struct {
	Value *string
}

type recordingStore struct {
	committed map[string]string
	failOn    map[string]error
	refreshes int
}

func newStringManager(store *recordingStore) *Manager[string, stringPatch] {
	return NewManager(Config[string, stringPatch]{
		Merge: func(v string, p stringPatch) string {
			if p.Value != nil {
				return *p.Value
			}
			return v
		},
		Validate: func(v string) error {
			if v == "invalid" {
				return errors.New("value is invalid")
			}
			return nil
		},
		Commit: func(_ context.Context, _ string, key string, v string) error {
			if err, ok := store.failOn[key]; ok {
				return err
			}
			store.committed[key] = v
			return nil
		},
		AfterSave: func(context.Context) {
			store.refreshes++
		},
	})
}

func strptr(s string) *string { return &s }

func TestManager_StartTransitionsToEdit(t *testing.T) {
	store := &recordingStore{committed: map[string]string{}}
	m := newStringManager(store)

	assert.Equal(t, StateView, m.StateOf("t1"))
	require.NoError(t, m.Start("t1", map[string]string{"a": "1"}))
	assert.Equal(t, StateEdit, m.StateOf("t1"))

	// One open buffer per table.
	assert.ErrorIs(t, m.Start("t1", nil), ErrAlreadyEditing)

	// Other tables are independent.
	require.NoError(t, m.Start("t2", map[string]string{"b": "2"}))
	assert.Equal(t, StateEdit, m.StateOf("t2"))
}

func TestManager_MutateRequiresEditAndKnownCell(t *testing.T) {
	store := &recordingStore{committed: map[string]string{}}
	m := newStringManager(store)

	assert.ErrorIs(t, m.Mutate("t1", "a", stringPatch{Value: strptr("x")}), ErrNotEditing)

	require.NoError(t, m.Start("t1", map[string]string{"a": "1"}))
	assert.ErrorIs(t, m.Mutate("t1", "missing", stringPatch{Value: strptr("x")}), ErrUnknownCell)

	require.NoError(t, m.Mutate("t1", "a", stringPatch{Value: strptr("x")}))
	buf, ok := m.Buffer("t1")
	require.True(t, ok)
	assert.Equal(t, "x", buf["a"])
}

func TestManager_CancelDiscardsEverything(t *testing.T) {
	store := &recordingStore{committed: map[string]string{}}
	m := newStringManager(store)

	require.NoError(t, m.Start("t1", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, m.Mutate("t1", "a", stringPatch{Value: strptr("edited")}))
	require.NoError(t, m.Mutate("t1", "b", stringPatch{Value: strptr("edited")}))

	require.NoError(t, m.Cancel("t1"))

	// Nothing committed, no refresh, back to VIEW.
	assert.Empty(t, store.committed)
	assert.Zero(t, store.refreshes)
	assert.Equal(t, StateView, m.StateOf("t1"))
	_, ok := m.Buffer("t1")
	assert.False(t, ok)

	assert.ErrorIs(t, m.Cancel("t1"), ErrNotEditing)
}

func TestManager_SaveCommitsValidAndReportsInvalid(t *testing.T) {
	store := &recordingStore{committed: map[string]string{}}
	m := newStringManager(store)

	require.NoError(t, m.Start("t1", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, m.Mutate("t1", "a", stringPatch{Value: strptr("ok")}))
	require.NoError(t, m.Mutate("t1", "b", stringPatch{Value: strptr("invalid")}))

	cellErrs, err := m.Save(context.Background(), "t1")
	require.NoError(t, err)

	require.Len(t, cellErrs, 1)
	assert.Equal(t, "b", cellErrs[0].Key)
	assert.Equal(t, "ok", store.committed["a"])
	_, committed := store.committed["b"]
	assert.False(t, committed)

	// Buffer gone, refresh fired despite the partial failure.
	assert.Equal(t, StateView, m.StateOf("t1"))
	assert.Equal(t, 1, store.refreshes)
}

func TestManager_SaveContinuesPastCommitFailure(t *testing.T) {
	store := &recordingStore{
		committed: map[string]string{},
		failOn:    map[string]error{"a": errors.New("backend unavailable")},
	}
	m := newStringManager(store)

	require.NoError(t, m.Start("t1", map[string]string{"a": "1", "b": "2", "c": "3"}))

	cellErrs, err := m.Save(context.Background(), "t1")
	require.NoError(t, err)

	require.Len(t, cellErrs, 1)
	assert.Equal(t, "a", cellErrs[0].Key)
	assert.Equal(t, "2", store.committed["b"])
	assert.Equal(t, "3", store.committed["c"])
}

func TestManager_SaveRequiresEdit(t *testing.T) {
	store := &recordingStore{committed: map[string]string{}}
	m := newStringManager(store)

	_, err := m.Save(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrNotEditing)
}
