package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID             int64     `json:"id"`
	ArticleID      int64     `json:"article_id"`
	UserID         int64     `json:"user_id"`
	Content        string    `json:"content"`
	LikingCount    int64     `json:"liking_count"`    // Derived from the feeling ledger
	DislikingCount int64     `json:"disliking_count"` // Derived from the feeling ledger
	CreatedAt      time.Time `json:"created_at"`

	// Writer 댓글 작성자 정보
	Writer *User `json:"writer,omitempty"`
}

// CommentUsecase 업무 로직 인터페이스
type CommentUsecase interface {
	// Create stores a comment under the article addressed by board/seq.
	Create(ctx context.Context, board BoardType, seq int64, c *Comment) error
	Delete(ctx context.Context, commentID int64, userID int64) error
	FetchByArticle(ctx context.Context, board BoardType, seq int64, cursor string, limit int64) ([]*Comment, string, error)
}

// CommentRepository 데이터 저장 인터페이스
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, commentID int64, userID int64) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// Fetch retrieves comments of an article, oldest first, cursor paged.
	Fetch(ctx context.Context, articleID int64, cursor string, limit int64) ([]*Comment, error)
	// CountByArticle tells whether an article can be hard-deleted.
	CountByArticle(ctx context.Context, articleID int64) (int64, error)
	// FetchLatest retrieves the newest comments site-wide for the home snapshot.
	FetchLatest(ctx context.Context, limit int64) ([]*Comment, error)
}
