package feeling

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jakduk/jakduk-go/domain"
)

type Service struct {
	feelingRepo domain.FeelingRepository
	articleRepo domain.ArticleRepository
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
	dispatcher  domain.NotificationDispatcher
}

var _ domain.FeelingUsecase = (*Service)(nil)

// NewService will create a new feeling service object
func NewService(
	f domain.FeelingRepository,
	a domain.ArticleRepository,
	c domain.CommentRepository,
	u domain.UserRepository,
	d domain.NotificationDispatcher,
) *Service {
	return &Service{
		feelingRepo: f,
		articleRepo: a,
		commentRepo: c,
		userRepo:    u,
		dispatcher:  d,
	}
}

// SetFeeling toggles the user's feeling on the target: first expression
// creates an entry, the same kind again removes it, the opposite kind flips
// it. Authors cannot feel their own writing. A lost race against a duplicate
// request is retried once on fresh state before ErrConflict surfaces.
func (s *Service) SetFeeling(ctx context.Context, userID int64, target domain.FeelingTarget, feeling domain.FeelingType) (domain.FeelingResult, error) {
	if feeling != domain.FeelingLike && feeling != domain.FeelingDislike {
		return domain.FeelingResult{}, domain.ErrBadParamInput
	}

	authorID, err := s.targetAuthor(ctx, target)
	if err != nil {
		return domain.FeelingResult{}, err
	}
	if authorID == userID {
		return domain.FeelingResult{}, domain.ErrForbidden
	}

	res, err := s.feelingRepo.Toggle(ctx, target, userID, feeling)
	if errors.Is(err, domain.ErrConflict) {
		logrus.Warnf("feeling toggle lost a race, retrying once: target=%v user=%d", target, userID)
		res, err = s.feelingRepo.Toggle(ctx, target, userID, feeling)
	}
	if err != nil {
		return domain.FeelingResult{}, err
	}

	if res.MyFeeling == domain.FeelingLike {
		s.dispatcher.Dispatch(domain.Notification{
			Type:        domain.NotifyFeeling,
			ActorID:     userID,
			RecipientID: authorID,
		})
	}

	return res, nil
}

// SetArticleFeeling resolves the article by its public address before
// toggling, so a wrong board/seq surfaces ErrNotFound.
func (s *Service) SetArticleFeeling(ctx context.Context, userID int64, board domain.BoardType, seq int64, feeling domain.FeelingType) (domain.FeelingResult, error) {
	article, err := s.articleRepo.GetBySeq(ctx, board, seq)
	if err != nil {
		return domain.FeelingResult{}, err
	}
	return s.SetFeeling(ctx, userID, domain.FeelingTarget{Type: domain.TargetArticle, ID: article.ID}, feeling)
}

// ArticleFeelingUsers resolves the article by its public address first.
func (s *Service) ArticleFeelingUsers(ctx context.Context, board domain.BoardType, seq int64) (domain.FeelingUsers, error) {
	article, err := s.articleRepo.GetBySeq(ctx, board, seq)
	if err != nil {
		return domain.FeelingUsers{}, err
	}
	return s.FeelingUsers(ctx, domain.FeelingTarget{Type: domain.TargetArticle, ID: article.ID})
}

func (s *Service) CountsFor(ctx context.Context, target domain.FeelingTarget) (domain.FeelingCounts, error) {
	return s.feelingRepo.CountByType(ctx, target)
}

func (s *Service) FeelingUsers(ctx context.Context, target domain.FeelingTarget) (domain.FeelingUsers, error) {
	if _, err := s.targetAuthor(ctx, target); err != nil {
		return domain.FeelingUsers{}, err
	}

	likingIDs, err := s.feelingRepo.FindUserIDs(ctx, target, domain.FeelingLike)
	if err != nil {
		return domain.FeelingUsers{}, err
	}
	dislikingIDs, err := s.feelingRepo.FindUserIDs(ctx, target, domain.FeelingDislike)
	if err != nil {
		return domain.FeelingUsers{}, err
	}

	res := domain.FeelingUsers{
		UsersLiking:    []domain.User{},
		UsersDisliking: []domain.User{},
	}

	users, err := s.userRepo.GetByIDs(ctx, append(append([]int64{}, likingIDs...), dislikingIDs...))
	if err != nil {
		return domain.FeelingUsers{}, err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		u.Password = ""
		userMap[u.ID] = u
	}

	for _, id := range likingIDs {
		if u, ok := userMap[id]; ok {
			res.UsersLiking = append(res.UsersLiking, u)
		}
	}
	for _, id := range dislikingIDs {
		if u, ok := userMap[id]; ok {
			res.UsersDisliking = append(res.UsersDisliking, u)
		}
	}

	return res, nil
}

// targetAuthor resolves the target's author and doubles as the existence
// check: a missing target surfaces ErrNotFound here.
func (s *Service) targetAuthor(ctx context.Context, target domain.FeelingTarget) (int64, error) {
	switch target.Type {
	case domain.TargetArticle:
		article, err := s.articleRepo.GetByID(ctx, target.ID)
		if err != nil {
			return 0, err
		}
		return article.Writer.ID, nil
	case domain.TargetComment:
		comment, err := s.commentRepo.GetByID(ctx, target.ID)
		if err != nil {
			return 0, err
		}
		return comment.UserID, nil
	default:
		return 0, domain.ErrBadParamInput
	}
}
