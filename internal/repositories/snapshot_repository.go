package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"wayfare/internal/models/db_models"
)

// SnapshotRepository mirrors a user's records as JSON blobs keyed per user.
// It backs the planner's fallback read when postgres is unreachable and is
// refreshed after every successful flush. It is never the source of truth
// while the database answers.
type SnapshotRepository interface {
	GetActivities(ctx context.Context, userID string) ([]db_models.Activity, error)
	PutActivities(ctx context.Context, userID string, records []db_models.Activity) error
	GetPlacedIDs(ctx context.Context, userID string) ([]int64, error)
	PutPlacedIDs(ctx context.Context, userID string, ids []int64) error
}

type redisSnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotRepository(client *redis.Client) SnapshotRepository {
	return &redisSnapshotRepository{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

func activitiesKey(userID string) string { return "wayfare:snapshot:activities:" + userID }
func placedKey(userID string) string     { return "wayfare:snapshot:placed:" + userID }

func (r *redisSnapshotRepository) GetActivities(ctx context.Context, userID string) ([]db_models.Activity, error) {
	payload, err := r.client.Get(ctx, activitiesKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var records []db_models.Activity
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *redisSnapshotRepository) PutActivities(ctx context.Context, userID string, records []db_models.Activity) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, activitiesKey(userID), payload, r.ttl).Err()
}

func (r *redisSnapshotRepository) GetPlacedIDs(ctx context.Context, userID string) ([]int64, error) {
	payload, err := r.client.Get(ctx, placedKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var ids []int64
	if err := json.Unmarshal(payload, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *redisSnapshotRepository) PutPlacedIDs(ctx context.Context, userID string, ids []int64) error {
	payload, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, placedKey(userID), payload, r.ttl).Err()
}
