package snapshots

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

const (
	errInputNil       = "input is required"
	errSnapshotNil    = "snapshot is required"
	errSnapshotIDNil  = "snapshot ID is required"
	errSessionIDEmpty = "session ID is required"
)

// InMemoryRepository implements Repository using in-memory storage.
// Snapshots never expire.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the snapshot
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.Snapshot.ID] = data

	return &SaveOutput{}, nil
}

// Get returns a copy of a stored snapshot
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDNil)
	}

	r.mu.RLock()
	data, ok := r.store[input.ID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("snapshot %s not found", input.ID)
	}

	snap, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Snapshot: snap}, nil
}

// ListBySession returns a session's snapshots ordered by creation time
func (r *InMemoryRepository) ListBySession(_ context.Context, input *ListBySessionInput) (*ListBySessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Snapshot
	for _, data := range r.store {
		snap, err := decode(data)
		if err != nil {
			return nil, err
		}
		if snap.SessionID == input.SessionID {
			out = append(out, snap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return &ListBySessionOutput{Snapshots: out}, nil
}

// Delete removes a snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.ID]; !ok {
		return nil, errors.NotFoundf("snapshot %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

func validateSave(input *SaveInput) error {
	if input == nil {
		return errors.InvalidArgument(errInputNil)
	}
	if input.Snapshot == nil {
		return errors.InvalidArgument(errSnapshotNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.Snapshot.ID, vb)
	errors.ValidateRequired("session_id", input.Snapshot.SessionID, vb)
	for i, p := range input.Snapshot.Placements {
		if p.Owner != NoOwner && (p.Owner < 0 || p.Owner >= i) {
			vb.Fieldf("placements", "placement %d has invalid owner %d", i, p.Owner)
		}
	}
	return vb.Build()
}

func decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}
	return &snap, nil
}
