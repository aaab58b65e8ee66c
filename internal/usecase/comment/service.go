package comment

import (
	"context"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	feelingRepo domain.FeelingRepository
	userRepo    domain.UserRepository
	dispatcher  domain.NotificationDispatcher
	sanitizer   *bluemonday.Policy
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	articleRepo domain.ArticleRepository,
	feelingRepo domain.FeelingRepository,
	userRepo domain.UserRepository,
	dispatcher domain.NotificationDispatcher,
) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		feelingRepo: feelingRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

// Create stores a sanitized comment and notifies the article's writer.
// Notification is fire-and-forget: its failure never fails the request.
func (s *service) Create(ctx context.Context, board domain.BoardType, seq int64, c *domain.Comment) error {
	if c.Content == "" {
		return domain.ErrBadParamInput
	}

	article, err := s.articleRepo.GetBySeq(ctx, board, seq)
	if err != nil {
		return err
	}

	c.ArticleID = article.ID
	c.Content = s.sanitizer.Sanitize(c.Content)
	c.CreatedAt = time.Now()
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	if article.Writer.ID != c.UserID {
		s.dispatcher.Dispatch(domain.Notification{
			Type:        domain.NotifyNewComment,
			Board:       article.Board,
			ArticleSeq:  article.Seq,
			CommentID:   c.ID,
			ActorID:     c.UserID,
			RecipientID: article.Writer.ID,
		})
	}

	return nil
}

// Delete removes the caller's own comment and its feeling ledger entries.
func (s *service) Delete(ctx context.Context, commentID int64, userID int64) error {
	if err := s.commentRepo.Delete(ctx, commentID, userID); err != nil {
		return err
	}

	target := domain.FeelingTarget{Type: domain.TargetComment, ID: commentID}
	if err := s.feelingRepo.DeleteByTarget(ctx, target); err != nil {
		logrus.Errorf("failed to drop feelings of deleted comment %d: %v", commentID, err)
	}
	return nil
}

func (s *service) FetchByArticle(ctx context.Context, board domain.BoardType, seq int64, cursor string, limit int64) ([]*domain.Comment, string, error) {
	article, err := s.articleRepo.GetBySeq(ctx, board, seq)
	if err != nil {
		return nil, "", err
	}

	res, err := s.commentRepo.Fetch(ctx, article.ID, cursor, limit)
	if err != nil {
		return []*domain.Comment{}, "", err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, "", nil
	}

	if err := s.fillWriters(ctx, res); err != nil {
		logrus.Warnf("failed to fill comment writers: %v", err)
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

func (s *service) fillWriters(ctx context.Context, comments []*domain.Comment) error {
	userIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, c := range comments {
		if !seen[c.UserID] {
			userIDs = append(userIDs, c.UserID)
			seen[c.UserID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		u.Password = ""
		userMap[u.ID] = u
	}

	for _, c := range comments {
		if u, ok := userMap[c.UserID]; ok {
			writer := u
			c.Writer = &writer
		}
	}
	return nil
}
