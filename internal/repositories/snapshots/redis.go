package snapshots

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-grid/internal/redis"
)

const (
	snapshotKeyPrefix = "snapshot:"
	sessionKeyPrefix  = "snapshot:session:"
	defaultTTL        = 24 * time.Hour
)

// RedisConfig holds the dependencies for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL applies to every snapshot and to the session index. Zero uses 24h.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	return vb.Build()
}

// RedisRepository stores snapshots as JSON with a per-session sorted set
// index scored by creation time
type RedisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

var _ Repository = (*RedisRepository)(nil)

// NewRedis creates a Redis-backed snapshot repository
func NewRedis(cfg *RedisConfig) (*RedisRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &RedisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// Save stores the snapshot and indexes it under its session
func (r *RedisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	snap := input.Snapshot
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	sessionKey := sessionKeyPrefix + snap.SessionID

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, snapshotKeyPrefix+snap.ID, data, r.ttl)
	pipe.ZAdd(ctx, sessionKey, redis.Z{
		Score:  float64(snap.CreatedAt.UnixNano()),
		Member: snap.ID,
	})
	pipe.Expire(ctx, sessionKey, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot %s", snap.ID)
	}

	return &SaveOutput{}, nil
}

// Get retrieves a snapshot by ID
func (r *RedisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDNil)
	}

	result, err := r.client.Get(ctx, snapshotKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("snapshot %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get snapshot %s", input.ID)
	}

	snap, err := decode([]byte(result))
	if err != nil {
		return nil, err
	}
	return &GetOutput{Snapshot: snap}, nil
}

// ListBySession returns a session's snapshots oldest first. Index entries
// whose snapshot has expired are pruned.
func (r *RedisRepository) ListBySession(ctx context.Context, input *ListBySessionInput) (*ListBySessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	sessionKey := sessionKeyPrefix + input.SessionID
	ids, err := r.client.ZRange(ctx, sessionKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list snapshots for session %s", input.SessionID)
	}
	if len(ids) == 0 {
		return &ListBySessionOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = snapshotKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load snapshots for session %s", input.SessionID)
	}

	out := make([]*Snapshot, 0, len(values))
	var stale []interface{}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		snap, err := decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}

	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, sessionKey, stale...).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to prune session index %s", input.SessionID)
		}
	}

	return &ListBySessionOutput{Snapshots: out}, nil
}

// Delete removes a snapshot and its index entry
func (r *RedisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	got, err := r.Get(ctx, &GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, snapshotKeyPrefix+input.ID)
	pipe.ZRem(ctx, sessionKeyPrefix+got.Snapshot.SessionID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete snapshot %s", input.ID)
	}

	return &DeleteOutput{}, nil
}
