package domain

import (
	"context"
	"time"
)

// BoardType is the closed set of boards an article can belong to.
type BoardType string

const (
	BoardFree      BoardType = "free"
	BoardFootball  BoardType = "football"
	BoardDeveloper BoardType = "developer"
)

// ParseBoardType validates the URL form of a board name.
func ParseBoardType(s string) (BoardType, error) {
	switch BoardType(s) {
	case BoardFree, BoardFootball, BoardDeveloper:
		return BoardType(s), nil
	default:
		return "", ErrBadParamInput
	}
}

// ArticleStatus marks how far an article has been deleted. An article whose
// comments must survive keeps its row with blanked content.
type ArticleStatus int8

const (
	ArticleActive ArticleStatus = iota
	ArticleContentDeleted
	ArticleDeleted
)

// Article is representing the Article data struct
type Article struct {
	ID             int64         // Unique identifier for the article
	Board          BoardType     // Board the article belongs to
	Seq            int64         // Per-board sequence number, unique within a board
	Subject        string        // Article subject
	Content        string        // Article body content, sanitized HTML
	Writer         User          // Author information
	Status         ArticleStatus // Active / content-deleted / deleted
	Views          int64         // Number of views, deduplicated per viewer
	LikingCount    int64         // Derived from the feeling ledger
	DislikingCount int64         // Derived from the feeling ledger
	CreatedAt      time.Time     // Creation timestamp
	UpdatedAt      time.Time     // Last update timestamp
}

// ArticleDetail is the single-article read model: the article plus the
// caller's own feeling resolved from the ledger.
type ArticleDetail struct {
	Article   Article
	MyFeeling FeelingType
}

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// GetBySeq retrieves an article by its board and sequence number.
	// Returns ErrNotFound if the article doesn't exist.
	GetBySeq(ctx context.Context, board BoardType, seq int64) (Article, error)

	// Fetch retrieves one page of a board listing ordered by seq desc,
	// together with the total number of articles on the board.
	Fetch(ctx context.Context, board BoardType, pageNumber, pageSize int64) ([]Article, int64, error)

	// FetchLatest retrieves the newest articles across all boards,
	// ordered by id desc, for the home snapshot.
	FetchLatest(ctx context.Context, limit int64) ([]Article, error)

	// Store creates a new article and assigns its per-board seq.
	Store(ctx context.Context, a *Article) error

	// Update modifies an existing article.
	// Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, a *Article) error

	// UpdateStatus blanks or restores an article without touching what
	// others wrote under it.
	UpdateStatus(ctx context.Context, id int64, status ArticleStatus) error

	// Delete removes an article row by its ID.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// AddViews increments the persisted view count of an article.
	AddViews(ctx context.Context, id int64, deltaViews int64) error
}

// ViewCache buffers deduplicated view increments ahead of the database.
type ViewCache interface {
	// MarkViewed records viewerKey against the article inside the dedup
	// window. Returns true only the first time within the window.
	MarkViewed(ctx context.Context, articleID int64, viewerKey string) (bool, error)

	// IncrViews bumps the buffered delta for the article and returns it.
	IncrViews(ctx context.Context, articleID int64) (int64, error)

	// GetViews returns the buffered delta without modifying it.
	GetViews(ctx context.Context, articleID int64) (int64, error)

	// FetchAndResetViews drains the whole buffer for the sync worker.
	FetchAndResetViews(ctx context.Context) (map[int64]int64, error)
}

// ArticleUsecase defines the business logic contract for articles.
type ArticleUsecase interface {
	// GetBySeq reads one article, records a deduplicated view for
	// viewerKey and resolves the caller's feeling (userID 0 = anonymous).
	GetBySeq(ctx context.Context, board BoardType, seq int64, viewerKey string, userID int64) (ArticleDetail, error)

	// List returns one page of a board, ordered by seq desc. Out-of-range
	// pages are a valid empty result, never an error.
	List(ctx context.Context, board BoardType, pageNumber, pageSize int64) (Page[Article], error)

	// Write stores a new, sanitized article.
	Write(ctx context.Context, a *Article) error

	// Edit updates subject/content of the caller's own article.
	Edit(ctx context.Context, userID int64, a *Article) error

	// Delete removes the caller's own article. When comments exist only
	// the content is blanked so the thread stays readable.
	Delete(ctx context.Context, userID int64, board BoardType, seq int64) (ArticleStatus, error)
}
