package comment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/repository"
	"github.com/jakduk/jakduk-go/internal/usecase/comment"
)

type stubArticleRepo struct {
	domain.ArticleRepository
	article domain.Article
}

func (r *stubArticleRepo) GetBySeq(_ context.Context, board domain.BoardType, seq int64) (domain.Article, error) {
	if board != r.article.Board || seq != r.article.Seq {
		return domain.Article{}, domain.ErrNotFound
	}
	return r.article, nil
}

type stubCommentRepo struct {
	domain.CommentRepository
	stored   []*domain.Comment
	fetched  []*domain.Comment
	deleteFn func(commentID, userID int64) error
}

func (r *stubCommentRepo) Store(_ context.Context, c *domain.Comment) error {
	c.ID = int64(len(r.stored) + 1)
	r.stored = append(r.stored, c)
	return nil
}

func (r *stubCommentRepo) Fetch(_ context.Context, _ int64, _ string, _ int64) ([]*domain.Comment, error) {
	return r.fetched, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, commentID, userID int64) error {
	return r.deleteFn(commentID, userID)
}

type stubFeelingRepo struct {
	domain.FeelingRepository
	dropped []domain.FeelingTarget
}

func (r *stubFeelingRepo) DeleteByTarget(_ context.Context, target domain.FeelingTarget) error {
	r.dropped = append(r.dropped, target)
	return nil
}

type stubUserRepo struct {
	domain.UserRepository
	users map[int64]domain.User
}

func (r *stubUserRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	var res []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

type recordingDispatcher struct {
	events []domain.Notification
}

func (d *recordingDispatcher) Start(context.Context) {}

func (d *recordingDispatcher) Dispatch(n domain.Notification) {
	d.events = append(d.events, n)
}

type fixture struct {
	svc         domain.CommentUsecase
	commentRepo *stubCommentRepo
	feelingRepo *stubFeelingRepo
	dispatcher  *recordingDispatcher
}

func newFixture() *fixture {
	articleRepo := &stubArticleRepo{article: domain.Article{
		ID:     10,
		Board:  domain.BoardFree,
		Seq:    3,
		Writer: domain.User{ID: 1},
	}}
	commentRepo := &stubCommentRepo{}
	feelingRepo := &stubFeelingRepo{}
	userRepo := &stubUserRepo{users: map[int64]domain.User{
		2: {ID: 2, Username: "commenter", Password: "hash"},
	}}
	dispatcher := &recordingDispatcher{}

	return &fixture{
		svc:         comment.NewService(commentRepo, articleRepo, feelingRepo, userRepo, dispatcher),
		commentRepo: commentRepo,
		feelingRepo: feelingRepo,
		dispatcher:  dispatcher,
	}
}

func TestCreateSanitizesAndNotifiesWriter(t *testing.T) {
	f := newFixture()

	c := domain.Comment{UserID: 2, Content: `nice<script>alert("x")</script>`}
	require.NoError(t, f.svc.Create(context.Background(), domain.BoardFree, 3, &c))

	assert.Equal(t, int64(10), c.ArticleID)
	assert.Equal(t, "nice", c.Content)

	require.Len(t, f.dispatcher.events, 1)
	event := f.dispatcher.events[0]
	assert.Equal(t, domain.NotifyNewComment, event.Type)
	assert.Equal(t, int64(2), event.ActorID)
	assert.Equal(t, int64(1), event.RecipientID)
}

func TestCreateOwnArticleSkipsNotification(t *testing.T) {
	f := newFixture()

	c := domain.Comment{UserID: 1, Content: "my own thread"}
	require.NoError(t, f.svc.Create(context.Background(), domain.BoardFree, 3, &c))
	assert.Empty(t, f.dispatcher.events)
}

func TestCreateOnMissingArticle(t *testing.T) {
	f := newFixture()

	c := domain.Comment{UserID: 2, Content: "hello"}
	err := f.svc.Create(context.Background(), domain.BoardFree, 42, &c)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateEmptyContent(t *testing.T) {
	f := newFixture()

	c := domain.Comment{UserID: 2}
	err := f.svc.Create(context.Background(), domain.BoardFree, 3, &c)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestDeleteDropsFeelings(t *testing.T) {
	f := newFixture()
	f.commentRepo.deleteFn = func(commentID, userID int64) error { return nil }

	require.NoError(t, f.svc.Delete(context.Background(), 77, 2))
	require.Len(t, f.feelingRepo.dropped, 1)
	assert.Equal(t, domain.FeelingTarget{Type: domain.TargetComment, ID: 77}, f.feelingRepo.dropped[0])
}

func TestDeleteForeignCommentForbidden(t *testing.T) {
	f := newFixture()
	f.commentRepo.deleteFn = func(commentID, userID int64) error { return domain.ErrForbidden }

	err := f.svc.Delete(context.Background(), 77, 99)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.feelingRepo.dropped)
}

func TestFetchByArticleFillsWritersAndCursor(t *testing.T) {
	f := newFixture()
	last := time.Now().Truncate(time.Millisecond)
	f.commentRepo.fetched = []*domain.Comment{
		{ID: 5, ArticleID: 10, UserID: 2, Content: "first", CreatedAt: last.Add(-time.Minute)},
		{ID: 6, ArticleID: 10, UserID: 2, Content: "second", CreatedAt: last},
	}

	comments, cursor, err := f.svc.FetchByArticle(context.Background(), domain.BoardFree, 3, "", 20)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.NotNil(t, comments[0].Writer)
	assert.Equal(t, "commenter", comments[0].Writer.Username)
	assert.Empty(t, comments[0].Writer.Password)

	decoded, err := repository.DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, last.Equal(decoded))
}

func TestFetchByArticleEmpty(t *testing.T) {
	f := newFixture()

	comments, cursor, err := f.svc.FetchByArticle(context.Background(), domain.BoardFree, 3, "", 20)
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
	assert.Empty(t, cursor)
}
