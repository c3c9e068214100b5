// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots"
	snapshotsmock "github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots/mock"
)

// SnapshotStore backs a mock snapshot repository with a map so save and
// load round trips can be asserted through gomock
type SnapshotStore struct {
	Saved map[string]*snapshots.Snapshot
}

// ExpectSnapshotStore wires Save, Get and ListBySession on mockRepo to an
// in-test store. Every call is optional.
func ExpectSnapshotStore(mockRepo *snapshotsmock.MockRepository) *SnapshotStore {
	store := &SnapshotStore{Saved: make(map[string]*snapshots.Snapshot)}

	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *snapshots.SaveInput) (*snapshots.SaveOutput, error) {
			store.Saved[input.Snapshot.ID] = input.Snapshot
			return &snapshots.SaveOutput{}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *snapshots.GetInput) (*snapshots.GetOutput, error) {
			snap, ok := store.Saved[input.ID]
			if !ok {
				return nil, errors.NotFoundf("snapshot %s not found", input.ID)
			}
			return &snapshots.GetOutput{Snapshot: snap}, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		ListBySession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *snapshots.ListBySessionInput) (*snapshots.ListBySessionOutput, error) {
			var out []*snapshots.Snapshot
			for _, snap := range store.Saved {
				if snap.SessionID == input.SessionID {
					out = append(out, snap)
				}
			}
			return &snapshots.ListBySessionOutput{Snapshots: out}, nil
		}).
		AnyTimes()

	return store
}

// ExpectSnapshotSaveError makes the next Save fail with err
func ExpectSnapshotSaveError(mockRepo *snapshotsmock.MockRepository, err error) {
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, err)
}
