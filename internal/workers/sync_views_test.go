package workers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/workers"
)

type recordingArticleRepo struct {
	domain.ArticleRepository
	mu     sync.Mutex
	synced map[int64]int64
}

func (r *recordingArticleRepo) AddViews(_ context.Context, id int64, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.synced[id] += delta
	return nil
}

type bufferedViewCache struct {
	domain.ViewCache
	mu     sync.Mutex
	buffer map[int64]int64
}

func (c *bufferedViewCache) FetchAndResetViews(_ context.Context) (map[int64]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.buffer
	c.buffer = map[int64]int64{}
	return out, nil
}

func TestSyncViewsFlushOnShutdown(t *testing.T) {
	repo := &recordingArticleRepo{synced: make(map[int64]int64)}
	cache := &bufferedViewCache{buffer: map[int64]int64{10: 3, 42: 1, 77: 0}}

	worker := workers.NewSyncViewsWorker(repo, cache)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	// shutdown drains the buffer without waiting for the next tick
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, map[int64]int64{10: 3, 42: 1}, repo.synced)
}
