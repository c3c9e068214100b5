package snapshots_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots"
	"github.com/KirkDiggler/rpg-grid/internal/testutils"
)

var baseTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func sampleSnapshot(id, session string, offset time.Duration) *snapshots.Snapshot {
	return &snapshots.Snapshot{
		ID:          id,
		SessionID:   session,
		ActiveLayer: 1,
		CreatedAt:   baseTime.Add(offset),
		Placements: []snapshots.Placement{
			{
				TemplateID: testutils.TemplateFloor,
				Category:   entities.FloorObject,
				Origin:     entities.Coord{X: 1, Z: 2},
				Position:   entities.Vec3{X: 1.5, Z: 2.5},
				Owner:      snapshots.NoOwner,
			},
			{
				TemplateID: testutils.TemplateWall,
				Category:   entities.WallObject,
				Position:   entities.Vec3{X: 1.5, Z: 3},
				Owner:      0,
				Edge:       entities.EdgeUp,
			},
			{
				TemplateID:  testutils.TemplateBed,
				Category:    entities.GridObject,
				Layer:       1,
				Origin:      entities.Coord{X: 3, Z: 3},
				Orientation: entities.Left,
				Position:    entities.Vec3{X: 4, Y: 3.1, Z: 4},
				Yaw:         270,
				Owner:       snapshots.NoOwner,
			},
		},
	}
}

// repositorySuite runs the same behaviors against each implementation
type repositorySuite struct {
	suite.Suite
	newRepo func() snapshots.Repository
	repo    snapshots.Repository
	ctx     context.Context
}

func (s *repositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *repositorySuite) TestSaveAndGet() {
	want := sampleSnapshot("snap_1", "sess_1", 0)

	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: want})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_1"})
	s.Require().NoError(err)
	s.Equal(want.SessionID, got.Snapshot.SessionID)
	s.Equal(want.ActiveLayer, got.Snapshot.ActiveLayer)
	s.True(want.CreatedAt.Equal(got.Snapshot.CreatedAt))
	s.Equal(want.Placements, got.Snapshot.Placements)
}

func (s *repositorySuite) TestGetReturnsCopy() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: sampleSnapshot("snap_1", "sess_1", 0)})
	s.Require().NoError(err)

	first, err := s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_1"})
	s.Require().NoError(err)
	first.Snapshot.Placements[0].TemplateID = "mutated"

	second, err := s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_1"})
	s.Require().NoError(err)
	s.Equal(testutils.TemplateFloor, second.Snapshot.Placements[0].TemplateID)
}

func (s *repositorySuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &snapshots.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *repositorySuite) TestSaveValidation() {
	testCases := []struct {
		name  string
		input *snapshots.SaveInput
	}{
		{name: "nil input", input: nil},
		{name: "nil snapshot", input: &snapshots.SaveInput{}},
		{name: "missing id", input: &snapshots.SaveInput{Snapshot: sampleSnapshot("", "sess_1", 0)}},
		{name: "missing session", input: &snapshots.SaveInput{Snapshot: sampleSnapshot("snap_1", "", 0)}},
		{
			name: "wall owner after wall",
			input: func() *snapshots.SaveInput {
				snap := sampleSnapshot("snap_1", "sess_1", 0)
				snap.Placements[1].Owner = 2
				return &snapshots.SaveInput{Snapshot: snap}
			}(),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *repositorySuite) TestListBySessionOrdersByCreation() {
	for _, snap := range []*snapshots.Snapshot{
		sampleSnapshot("snap_b", "sess_1", 2*time.Minute),
		sampleSnapshot("snap_a", "sess_1", time.Minute),
		sampleSnapshot("snap_c", "sess_2", 0),
	} {
		_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: snap})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListBySession(s.ctx, &snapshots.ListBySessionInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Snapshots, 2)
	s.Equal("snap_a", out.Snapshots[0].ID)
	s.Equal("snap_b", out.Snapshots[1].ID)

	empty, err := s.repo.ListBySession(s.ctx, &snapshots.ListBySessionInput{SessionID: "sess_9"})
	s.Require().NoError(err)
	s.Empty(empty.Snapshots)
}

func (s *repositorySuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: sampleSnapshot("snap_1", "sess_1", 0)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &snapshots.DeleteInput{ID: "snap_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_1"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.ListBySession(s.ctx, &snapshots.ListBySessionInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Empty(out.Snapshots)

	_, err = s.repo.Delete(s.ctx, &snapshots.DeleteInput{ID: "snap_1"})
	s.True(errors.IsNotFound(err))
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &repositorySuite{
		newRepo: func() snapshots.Repository { return snapshots.NewInMemory() },
	})
}

func TestRedisRepositoryBehavior(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	suite.Run(t, &repositorySuite{
		newRepo: func() snapshots.Repository {
			_ = client.FlushAll(context.Background()).Err()
			repo, err := snapshots.NewRedis(&snapshots.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("new redis repository: %v", err)
			}
			return repo
		},
	})
}

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    *snapshots.RedisRepository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := snapshots.NewRedis(&snapshots.RedisConfig{Client: client, TTL: time.Hour})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := snapshots.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = snapshots.NewRedis(&snapshots.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveWritesKeysWithTTL() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: sampleSnapshot("snap_1", "sess_1", 0)})
	s.Require().NoError(err)

	s.True(s.mr.Exists("snapshot:snap_1"))
	s.Equal(time.Hour, s.mr.TTL("snapshot:snap_1"))

	members, err := s.mr.ZMembers("snapshot:session:sess_1")
	s.Require().NoError(err)
	s.Equal([]string{"snap_1"}, members)
}

func (s *RedisRepositoryTestSuite) TestExpiredSnapshotsArePruned() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: sampleSnapshot("snap_1", "sess_1", 0)})
	s.Require().NoError(err)

	// the index outlives the snapshot key
	s.mr.Del("snapshot:snap_1")

	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_1"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.ListBySession(s.ctx, &snapshots.ListBySessionInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Empty(out.Snapshots)
	s.False(s.mr.Exists("snapshot:session:sess_1"))
}

func (s *RedisRepositoryTestSuite) TestFastForwardExpires() {
	_, err := s.repo.Save(s.ctx, &snapshots.SaveInput{Snapshot: sampleSnapshot("snap_1", "sess_1", 0)})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, &snapshots.GetInput{ID: "snap_1"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
