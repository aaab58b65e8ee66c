package article

import (
	"context"
	"errors"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/repository"
)

type Service struct {
	articleRepo domain.ArticleRepository
	commentRepo domain.CommentRepository
	feelingRepo domain.FeelingRepository
	userRepo    domain.UserRepository
	viewCache   domain.ViewCache
	sanitizer   *bluemonday.Policy
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(
	a domain.ArticleRepository,
	c domain.CommentRepository,
	f domain.FeelingRepository,
	u domain.UserRepository,
	v domain.ViewCache,
) *Service {
	return &Service{
		articleRepo: a,
		commentRepo: c,
		feelingRepo: f,
		userRepo:    u,
		viewCache:   v,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

// GetBySeq reads one article. The view counter is bumped at most once per
// (article, viewerKey) inside the dedup window, so refresh spam does not
// inflate it. MyFeeling is resolved from the ledger for logged-in callers.
func (s *Service) GetBySeq(ctx context.Context, board domain.BoardType, seq int64, viewerKey string, userID int64) (domain.ArticleDetail, error) {
	article, err := s.articleRepo.GetBySeq(ctx, board, seq)
	if err != nil {
		return domain.ArticleDetail{}, err
	}

	writer, err := s.userRepo.GetByID(ctx, article.Writer.ID)
	if err != nil {
		logrus.Warnf("failed to load writer %d: %v", article.Writer.ID, err)
	} else {
		writer.Password = ""
		article.Writer = writer
	}

	article.Views += s.recordView(ctx, article.ID, viewerKey)

	detail := domain.ArticleDetail{Article: article}

	if userID != 0 {
		entry, err := s.feelingRepo.FindEntry(ctx, domain.FeelingTarget{Type: domain.TargetArticle, ID: article.ID}, userID)
		switch {
		case err == nil:
			detail.MyFeeling = entry.Feeling
		case errors.Is(err, domain.ErrNotFound):
			detail.MyFeeling = domain.FeelingNone
		default:
			logrus.Warnf("failed to resolve my feeling: %v", err)
		}
	}

	return detail, nil
}

// recordView returns the buffered view delta to add on top of the persisted
// count. Cache trouble only costs the delta, never the read.
func (s *Service) recordView(ctx context.Context, articleID int64, viewerKey string) int64 {
	if viewerKey == "" {
		delta, err := s.viewCache.GetViews(ctx, articleID)
		if err != nil {
			logrus.Errorf("failed to read view buffer: %v", err)
			return 0
		}
		return delta
	}

	first, err := s.viewCache.MarkViewed(ctx, articleID, viewerKey)
	if err != nil {
		logrus.Errorf("failed to mark view: %v", err)
		return 0
	}

	if first {
		delta, err := s.viewCache.IncrViews(ctx, articleID)
		if err != nil {
			logrus.Errorf("failed to incr view buffer: %v", err)
			return 0
		}
		return delta
	}

	delta, err := s.viewCache.GetViews(ctx, articleID)
	if err != nil {
		logrus.Errorf("failed to read view buffer: %v", err)
		return 0
	}
	return delta
}

func (s *Service) List(ctx context.Context, board domain.BoardType, pageNumber, pageSize int64) (domain.Page[domain.Article], error) {
	if pageNumber < 0 {
		pageNumber = 0
	}
	repository.PageVerify(&pageSize)

	articles, total, err := s.articleRepo.Fetch(ctx, board, pageNumber, pageSize)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}

	articles, err = s.fillWriters(ctx, articles)
	if err != nil {
		logrus.Warnf("failed to fill writers for board %s: %v", board, err)
	}

	return domain.NewPage(articles, pageNumber, pageSize, total), nil
}

func (s *Service) Write(ctx context.Context, a *domain.Article) error {
	if a.Subject == "" || a.Content == "" {
		return domain.ErrBadParamInput
	}

	a.Content = s.sanitizer.Sanitize(a.Content)
	a.Status = domain.ArticleActive
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	return s.articleRepo.Store(ctx, a)
}

func (s *Service) Edit(ctx context.Context, userID int64, a *domain.Article) error {
	existing, err := s.articleRepo.GetBySeq(ctx, a.Board, a.Seq)
	if err != nil {
		return err
	}
	if existing.Writer.ID != userID {
		return domain.ErrForbidden
	}

	a.ID = existing.ID
	a.Content = s.sanitizer.Sanitize(a.Content)
	a.UpdatedAt = time.Now()
	return s.articleRepo.Update(ctx, a)
}

// Delete removes the caller's article. When comments exist the row stays
// with blanked content so the thread is still readable; the feeling ledger
// is dropped only on a hard delete.
func (s *Service) Delete(ctx context.Context, userID int64, board domain.BoardType, seq int64) (domain.ArticleStatus, error) {
	existing, err := s.articleRepo.GetBySeq(ctx, board, seq)
	if err != nil {
		return domain.ArticleActive, err
	}
	if existing.Writer.ID != userID {
		return domain.ArticleActive, domain.ErrForbidden
	}

	commentCount, err := s.commentRepo.CountByArticle(ctx, existing.ID)
	if err != nil {
		return domain.ArticleActive, err
	}

	if commentCount > 0 {
		if err := s.articleRepo.UpdateStatus(ctx, existing.ID, domain.ArticleContentDeleted); err != nil {
			return domain.ArticleActive, err
		}
		return domain.ArticleContentDeleted, nil
	}

	if err := s.articleRepo.Delete(ctx, existing.ID); err != nil {
		return domain.ArticleActive, err
	}
	if err := s.feelingRepo.DeleteByTarget(ctx, domain.FeelingTarget{Type: domain.TargetArticle, ID: existing.ID}); err != nil {
		logrus.Errorf("failed to drop feelings of deleted article %d: %v", existing.ID, err)
	}
	return domain.ArticleDeleted, nil
}

// fillWriters 목록의 작성자 정보를 한 번의 조회로 채운다
func (s *Service) fillWriters(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if len(articles) == 0 {
		return articles, nil
	}

	userIDs := make([]int64, 0, len(articles))
	existMap := make(map[int64]bool)
	for _, item := range articles {
		if !existMap[item.Writer.ID] {
			userIDs = append(userIDs, item.Writer.ID)
			existMap[item.Writer.ID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return articles, err
	}

	userMap := make(map[int64]domain.User)
	for _, u := range users {
		u.Password = ""
		userMap[u.ID] = u
	}

	for i := range articles {
		if u, ok := userMap[articles[i].Writer.ID]; ok {
			articles[i].Writer = u
		}
	}

	return articles, nil
}
