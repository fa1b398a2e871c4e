package ops

import (
	"context"
	"sync"
)

// CheckpointStore remembers the last posting id a backfill run finished, so
// an interrupted run resumes where it stopped.
type CheckpointStore interface {
	// Load returns the saved id, or 0 when none is saved.
	Load(ctx context.Context) (int64, error)
	Save(ctx context.Context, lastID int64) error
	Clear(ctx context.Context) error
}

// MemoryCheckpoint keeps the checkpoint in process memory.
type MemoryCheckpoint struct {
	mu     sync.Mutex
	lastID int64
}

func NewMemoryCheckpoint() *MemoryCheckpoint { return &MemoryCheckpoint{} }

func (m *MemoryCheckpoint) Load(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastID, nil
}

func (m *MemoryCheckpoint) Save(_ context.Context, lastID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID = lastID
	return nil
}

func (m *MemoryCheckpoint) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID = 0
	return nil
}
