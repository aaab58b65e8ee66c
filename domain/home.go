package domain

import (
	"context"
	"time"
)

const (
	// Default per-category item limits of the home snapshot.
	HomeArticleLimit = 7
	HomeCommentLimit = 6
	HomeGalleryLimit = 5
	HomeUserLimit    = 5
)

// HomeLimits bounds every category read of the snapshot independently.
type HomeLimits struct {
	MaxArticles  int64
	MaxComments  int64
	MaxGalleries int64
	MaxUsers     int64
}

// DefaultHomeLimits returns the limits used by the home endpoint.
func DefaultHomeLimits() HomeLimits {
	return HomeLimits{
		MaxArticles:  HomeArticleLimit,
		MaxComments:  HomeCommentLimit,
		MaxGalleries: HomeGalleryLimit,
		MaxUsers:     HomeUserLimit,
	}
}

// HomeSnapshot is a best-effort composite of the latest items per category.
// Categories are sourced independently: a failed read leaves its slice empty
// and no relational integrity holds between categories.
type HomeSnapshot struct {
	HomeDescription string    `json:"home_description"`
	Users           []User    `json:"users"`
	Articles        []Article `json:"articles"`
	Comments        []Comment `json:"comments"`
	Galleries       []Gallery `json:"galleries"`
}

// Gallery is an uploaded image shown on the home page. Upload handling
// lives outside this core; only the metadata is read here.
type Gallery struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FileName  string    `json:"file_name"`
	WriterID  int64     `json:"writer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryRepository defines read access to gallery metadata.
type GalleryRepository interface {
	FetchLatest(ctx context.Context, limit int64) ([]Gallery, error)
}

// Encyclopedia 백과사전 항목
type Encyclopedia struct {
	ID       int64  `json:"id"`
	Seq      int64  `json:"seq"`
	Language string `json:"language"`
	Subject  string `json:"subject"`
	Content  string `json:"content"`
}

// EncyclopediaRepository picks encyclopedia entries per language.
type EncyclopediaRepository interface {
	// GetRandom returns one random entry for the language.
	// Returns ErrNotFound when the language has no entries.
	GetRandom(ctx context.Context, language string) (Encyclopedia, error)
}

// HomeDescriptionRepository reads the rotating site description.
type HomeDescriptionRepository interface {
	GetRandom(ctx context.Context) (string, error)
}

// HomeCache keeps a short-lived copy of the assembled snapshot using
// logical expiry: an expired snapshot is still served while a rebuild runs.
type HomeCache interface {
	// GetSnapshot returns the cached snapshot and whether it is logically
	// expired. Returns ErrCacheMiss when nothing is cached.
	GetSnapshot(ctx context.Context) (HomeSnapshot, bool, error)
	SetSnapshot(ctx context.Context, s HomeSnapshot, ttl time.Duration) error
}

// HomeUsecase assembles the home page read models.
type HomeUsecase interface {
	// Latest builds the snapshot with the given limits. Never fails on a
	// single category error.
	Latest(ctx context.Context, limits HomeLimits) (HomeSnapshot, error)

	// Encyclopedia returns a random entry for the language.
	Encyclopedia(ctx context.Context, language string) (Encyclopedia, error)
}
