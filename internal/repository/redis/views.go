package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jakduk/jakduk-go/domain"
)

const (
	KeyViewsSeen       = "article:views:seen:%d"
	KeyViewsBuffer     = "article:views:buffer"
	KeyViewsProcessing = "article:views:processing"

	// ViewDedupWindow is how long a viewer key suppresses repeat views of
	// the same article.
	ViewDedupWindow = 6 * time.Hour
)

type viewCache struct {
	client *redis.Client
}

var _ domain.ViewCache = (*viewCache)(nil)

func NewViewCache(client *redis.Client) *viewCache {
	return &viewCache{
		client,
	}
}

// MarkViewed adds viewerKey to the article's dedup set. SADD reports whether
// the member was new, so a race between duplicate requests resolves to
// exactly one true result.
func (c *viewCache) MarkViewed(ctx context.Context, articleID int64, viewerKey string) (bool, error) {
	key := fmt.Sprintf(KeyViewsSeen, articleID)

	added, err := c.client.SAdd(ctx, key, viewerKey).Result()
	if err != nil {
		return false, err
	}
	if err := c.client.Expire(ctx, key, ViewDedupWindow).Err(); err != nil {
		return false, err
	}

	return added == 1, nil
}

func (c *viewCache) IncrViews(ctx context.Context, articleID int64) (int64, error) {
	return c.client.HIncrBy(ctx, KeyViewsBuffer, strconv.FormatInt(articleID, 10), 1).Result()
}

func (c *viewCache) GetViews(ctx context.Context, articleID int64) (int64, error) {
	val, err := c.client.HGet(ctx, KeyViewsBuffer, strconv.FormatInt(articleID, 10)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	views, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return views, nil
}

// FetchAndResetViews atomically swaps the buffer aside and drains it for the
// sync worker. A missing buffer means no views since the last flush.
func (c *viewCache) FetchAndResetViews(ctx context.Context) (map[int64]int64, error) {
	result := make(map[int64]int64)
	err := c.client.Rename(ctx, KeyViewsBuffer, KeyViewsProcessing).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, nil
		}
		return result, err
	}

	data, err := c.client.HGetAll(ctx, KeyViewsProcessing).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, nil
		}
		return result, err
	}

	for idStr, viewsStr := range data {
		id, _ := strconv.ParseInt(idStr, 10, 64)
		views, _ := strconv.ParseInt(viewsStr, 10, 64)
		result[id] = views
	}

	c.client.Del(ctx, KeyViewsProcessing)

	return result, nil
}
