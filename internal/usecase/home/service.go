package home

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jakduk/jakduk-go/domain"
)

// snapshotTTL is the logical lifetime of a cached home snapshot.
const snapshotTTL = 30 * time.Second

type Service struct {
	articleRepo  domain.ArticleRepository
	commentRepo  domain.CommentRepository
	galleryRepo  domain.GalleryRepository
	userRepo     domain.UserRepository
	descRepo     domain.HomeDescriptionRepository
	encyclopedia domain.EncyclopediaRepository
	cache        domain.HomeCache
	buildGroup   singleflight.Group
}

var _ domain.HomeUsecase = (*Service)(nil)

// NewService will create a new home service object
func NewService(
	a domain.ArticleRepository,
	c domain.CommentRepository,
	g domain.GalleryRepository,
	u domain.UserRepository,
	d domain.HomeDescriptionRepository,
	e domain.EncyclopediaRepository,
	cache domain.HomeCache,
) *Service {
	return &Service{
		articleRepo:  a,
		commentRepo:  c,
		galleryRepo:  g,
		userRepo:     u,
		descRepo:     d,
		encyclopedia: e,
		cache:        cache,
	}
}

// Latest assembles the home snapshot. A fresh cached copy is served as-is;
// a logically expired copy is served while one goroutine rebuilds it.
func (s *Service) Latest(ctx context.Context, limits domain.HomeLimits) (domain.HomeSnapshot, error) {
	snapshot, expired, err := s.cache.GetSnapshot(ctx)
	if err == nil {
		if expired {
			go s.rebuildSnapshot(context.Background(), limits)
		}
		return snapshot, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("home snapshot cache read failed: %v", err)
	}

	res, err, _ := s.buildGroup.Do("home", func() (any, error) {
		snapshot := s.buildSnapshot(ctx, limits)

		go func(snapshot domain.HomeSnapshot) {
			if err := s.cache.SetSnapshot(context.Background(), snapshot, snapshotTTL); err != nil {
				logrus.Warnf("failed to cache home snapshot: %v", err)
			}
		}(snapshot)

		return snapshot, nil
	})
	if err != nil {
		return domain.HomeSnapshot{}, err
	}

	return res.(domain.HomeSnapshot), nil
}

// buildSnapshot fans out one independent read per category. A failed
// category degrades to its empty slice and the snapshot still succeeds;
// nothing here depends on another category's result.
func (s *Service) buildSnapshot(ctx context.Context, limits domain.HomeLimits) domain.HomeSnapshot {
	snapshot := domain.HomeSnapshot{
		Users:     []domain.User{},
		Articles:  []domain.Article{},
		Comments:  []domain.Comment{},
		Galleries: []domain.Gallery{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		desc, err := s.descRepo.GetRandom(ctx)
		if err != nil {
			logrus.Warnf("home description read failed: %v", err)
			return nil
		}
		snapshot.HomeDescription = desc
		return nil
	})

	g.Go(func() error {
		articles, err := s.articleRepo.FetchLatest(ctx, limits.MaxArticles)
		if err != nil {
			logrus.Warnf("latest articles read failed: %v", err)
			return nil
		}
		snapshot.Articles = articles
		return nil
	})

	g.Go(func() error {
		comments, err := s.commentRepo.FetchLatest(ctx, limits.MaxComments)
		if err != nil {
			logrus.Warnf("latest comments read failed: %v", err)
			return nil
		}
		for _, c := range comments {
			snapshot.Comments = append(snapshot.Comments, *c)
		}
		return nil
	})

	g.Go(func() error {
		galleries, err := s.galleryRepo.FetchLatest(ctx, limits.MaxGalleries)
		if err != nil {
			logrus.Warnf("latest galleries read failed: %v", err)
			return nil
		}
		snapshot.Galleries = galleries
		return nil
	})

	g.Go(func() error {
		users, err := s.userRepo.FetchLatest(ctx, limits.MaxUsers)
		if err != nil {
			logrus.Warnf("latest users read failed: %v", err)
			return nil
		}
		for i := range users {
			users[i].Password = ""
		}
		snapshot.Users = users
		return nil
	})

	// goroutines only ever return nil; Wait is just the join point
	_ = g.Wait()

	return snapshot
}

func (s *Service) rebuildSnapshot(ctx context.Context, limits domain.HomeLimits) {
	_, _, _ = s.buildGroup.Do("home", func() (any, error) {
		snapshot := s.buildSnapshot(ctx, limits)
		if err := s.cache.SetSnapshot(ctx, snapshot, snapshotTTL); err != nil {
			logrus.Warnf("failed to cache home snapshot: %v", err)
		}
		return snapshot, nil
	})
}

func (s *Service) Encyclopedia(ctx context.Context, language string) (domain.Encyclopedia, error) {
	if language == "" {
		language = "ko"
	}
	return s.encyclopedia.GetRandom(ctx, language)
}
