package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jakduk/jakduk-go/domain"
)

const viewsSyncInterval = 10 * time.Second

type syncViewsWorker struct {
	articleRepo domain.ArticleRepository
	viewCache   domain.ViewCache
}

func NewSyncViewsWorker(articleRepo domain.ArticleRepository, viewCache domain.ViewCache) *syncViewsWorker {
	return &syncViewsWorker{
		articleRepo: articleRepo,
		viewCache:   viewCache,
	}
}

// Start periodically drains the buffered view deltas into the database.
// The view counter only ever grows; a failed flush costs at most the
// drained deltas of one interval.
func (w *syncViewsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(viewsSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.flush(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down view syncer, flushing remaining views...")
			w.flush(context.Background())
			return
		}
	}
}

func (w *syncViewsWorker) flush(ctx context.Context) {
	views, err := w.viewCache.FetchAndResetViews(ctx)
	if err != nil {
		logrus.Errorf("failed to fetch buffered views: %v", err)
		return
	}

	for articleID, delta := range views {
		if delta == 0 {
			continue
		}
		if err := w.articleRepo.AddViews(ctx, articleID, delta); err != nil {
			logrus.Errorf("failed to sync %d views to article %d: %v", delta, articleID, err)
		}
	}
}
