package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/estate-service/internal/domain"
)

const (
	estateKeyPrefix = "estate:"
	estateListKey   = "estates:all"
	estateCacheTTL  = 5 * time.Minute
)

// EstateCache is a read-through Redis cache for the public listing queries.
// Misses and marshal failures degrade to the repository, never to an error.
type EstateCache struct {
	client *redis.Client
}

// NewEstateCache wraps an existing Redis client.
func NewEstateCache(client *redis.Client) *EstateCache {
	return &EstateCache{client: client}
}

// GetEstate returns the cached estate or nil on a miss.
func (c *EstateCache) GetEstate(ctx context.Context, id string) (*domain.Estate, error) {
	data, err := c.client.Get(ctx, estateKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var estate domain.Estate
	if err := json.Unmarshal(data, &estate); err != nil {
		return nil, err
	}
	return &estate, nil
}

// SetEstate stores a single estate.
func (c *EstateCache) SetEstate(ctx context.Context, estate *domain.Estate) error {
	data, err := json.Marshal(estate)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, estateKeyPrefix+estate.ID, data, estateCacheTTL).Err()
}

// GetEstateList returns the cached full listing or nil on a miss.
func (c *EstateCache) GetEstateList(ctx context.Context) ([]domain.Estate, error) {
	data, err := c.client.Get(ctx, estateListKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var estates []domain.Estate
	if err := json.Unmarshal(data, &estates); err != nil {
		return nil, err
	}
	return estates, nil
}

// SetEstateList stores the full listing.
func (c *EstateCache) SetEstateList(ctx context.Context, estates []domain.Estate) error {
	data, err := json.Marshal(estates)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, estateListKey, data, estateCacheTTL).Err()
}

// Invalidate drops the listing key and, when id is non-empty, the single
// estate key. Called after create/approve/assign mutations.
func (c *EstateCache) Invalidate(ctx context.Context, id string) error {
	keys := []string{estateListKey}
	if id != "" {
		keys = append(keys, estateKeyPrefix+id)
	}
	return c.client.Del(ctx, keys...).Err()
}
