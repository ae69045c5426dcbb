package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dental-landing/internal/domain/entity"
	domainRepo "dental-landing/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisViewStateKeyPrefix namespaces view snapshots in Redis.
const RedisViewStateKeyPrefix = "view:state:"

type viewStateRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewViewStateRepository(redisClient *redis.Client, ttl time.Duration) domainRepo.ViewStateRepository {
	return &viewStateRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (r *viewStateRepository) key(id uuid.UUID) string {
	return RedisViewStateKeyPrefix + id.String()
}

func (r *viewStateRepository) Save(ctx context.Context, state *entity.ViewState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode view state %s: %w", state.ID, err)
	}
	if err := r.redisClient.Set(ctx, r.key(state.ID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save view state %s: %w", state.ID, err)
	}
	return nil
}

func (r *viewStateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ViewState, error) {
	payload, err := r.redisClient.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get view state %s: %w", id, err)
	}

	var state entity.ViewState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("decode view state %s: %w", id, err)
	}
	return &state, nil
}

func (r *viewStateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("delete view state %s: %w", id, err)
	}
	return nil
}

type noopViewStateRepository struct{}

// NewNoopViewStateRepository is used when no Redis is configured; views then
// live only in the serving process.
func NewNoopViewStateRepository() domainRepo.ViewStateRepository {
	return noopViewStateRepository{}
}

func (noopViewStateRepository) Save(context.Context, *entity.ViewState) error { return nil }

func (noopViewStateRepository) FindByID(context.Context, uuid.UUID) (*entity.ViewState, error) {
	return nil, nil
}

func (noopViewStateRepository) Delete(context.Context, uuid.UUID) error { return nil }
