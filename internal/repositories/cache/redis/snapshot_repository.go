package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
)

const runKeyPrefix = "billing:run:"

// RedisSnapshotRepository stores billing run snapshots as JSON values with a
// TTL. A run that outlives the TTL must be re-fetched.
type RedisSnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotRepository creates a snapshot store over the given client.
func NewRedisSnapshotRepository(client *redis.Client, ttl time.Duration) portsrepo.SnapshotRepositoryFacade {
	return &RedisSnapshotRepository{client: client, ttl: ttl}
}

var _ portsrepo.SnapshotRepositoryFacade = (*RedisSnapshotRepository)(nil)

func runKey(runID string) string {
	return runKeyPrefix + runID
}

// SaveRun writes a run snapshot under its run id.
func (r *RedisSnapshotRepository) SaveRun(ctx context.Context, run domain.BillingRun) error {
	payload, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run %s: %w", run.RunID, err)
	}
	if err := r.client.Set(ctx, runKey(run.RunID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store run %s: %w", run.RunID, err)
	}
	return nil
}

// FindRun reads a run snapshot back.
func (r *RedisSnapshotRepository) FindRun(ctx context.Context, runID string) (*domain.BillingRun, error) {
	payload, err := r.client.Get(ctx, runKey(runID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrSnapshotExpired
		}
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	var run domain.BillingRun
	if err := json.Unmarshal(payload, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run %s: %w", runID, err)
	}
	return &run, nil
}

// DeleteRun discards a run snapshot. Deleting an absent run is not an error.
func (r *RedisSnapshotRepository) DeleteRun(ctx context.Context, runID string) error {
	if err := r.client.Del(ctx, runKey(runID)).Err(); err != nil {
		return fmt.Errorf("failed to delete run %s: %w", runID, err)
	}
	return nil
}
