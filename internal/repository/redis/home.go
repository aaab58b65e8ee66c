package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/repository/cache"
)

const (
	KeyHomeSnapshot = "home:snapshot"

	// physical TTL keeps stale snapshots around long enough to serve
	// while a rebuild runs
	homeSnapshotHardTTL = 10 * time.Minute
)

type homeCache struct {
	client *redis.Client
}

var _ domain.HomeCache = (*homeCache)(nil)

func NewHomeCache(client *redis.Client) *homeCache {
	return &homeCache{
		client,
	}
}

func (c *homeCache) GetSnapshot(ctx context.Context) (domain.HomeSnapshot, bool, error) {
	data, err := c.client.Get(ctx, KeyHomeSnapshot).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.HomeSnapshot{}, false, domain.ErrCacheMiss
	}
	if err != nil {
		return domain.HomeSnapshot{}, false, err
	}

	var envelope cache.Envelope[domain.HomeSnapshot]
	if err = json.Unmarshal(data, &envelope); err != nil {
		return domain.HomeSnapshot{}, false, err
	}

	return envelope.Data, envelope.Expired(), nil
}

func (c *homeCache) SetSnapshot(ctx context.Context, s domain.HomeSnapshot, ttl time.Duration) error {
	envelope := cache.NewEnvelope(s, ttl)
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyHomeSnapshot, data, homeSnapshotHardTTL).Err()
}
