package domain

import (
	"context"
	"time"
)

// FeelingType is a user's like/dislike expression on a target.
type FeelingType int8

const (
	FeelingNone FeelingType = iota
	FeelingLike
	FeelingDislike
)

func (f FeelingType) String() string {
	switch f {
	case FeelingLike:
		return "LIKE"
	case FeelingDislike:
		return "DISLIKE"
	default:
		return "NONE"
	}
}

// ParseFeelingType parses the URL form ("like"/"dislike").
func ParseFeelingType(s string) (FeelingType, error) {
	switch s {
	case "like", "LIKE":
		return FeelingLike, nil
	case "dislike", "DISLIKE":
		return FeelingDislike, nil
	default:
		return FeelingNone, ErrBadParamInput
	}
}

// TargetType tells whether a feeling points at an article or a comment.
type TargetType int8

const (
	TargetArticle TargetType = iota + 1
	TargetComment
)

func (t TargetType) String() string {
	switch t {
	case TargetArticle:
		return "ARTICLE"
	case TargetComment:
		return "COMMENT"
	default:
		return "UNKNOWN"
	}
}

// FeelingTarget identifies an article or a comment. Immutable once created.
type FeelingTarget struct {
	Type TargetType
	ID   int64
}

// FeelingEntry is one row of the ledger: at most one per (target, user).
type FeelingEntry struct {
	TargetType TargetType
	TargetID   int64
	UserID     int64
	Feeling    FeelingType
	CreatedAt  time.Time
}

// FeelingCounts is always derived from the ledger, never set independently.
type FeelingCounts struct {
	Likes    int64
	Dislikes int64
}

// FeelingResult is what a toggle returns: the caller's state after the
// mutation plus the recomputed counts.
type FeelingResult struct {
	MyFeeling FeelingType // FeelingNone after a toggle-off
	Counts    FeelingCounts
}

// FeelingUsers lists who expressed each feeling on a target.
type FeelingUsers struct {
	UsersLiking    []User
	UsersDisliking []User
}

// FeelingRepository defines the contract for the feeling ledger persistence.
type FeelingRepository interface {
	// FindEntry retrieves the ledger entry for (target, user).
	// Returns ErrNotFound if the user has no feeling on the target.
	FindEntry(ctx context.Context, target FeelingTarget, userID int64) (FeelingEntry, error)

	// Toggle applies the ledger semantics for (target, user) as one atomic
	// storage transaction: no entry -> create, same kind -> delete
	// (toggle-off), opposite kind -> flip. The denormalized counts on the
	// target row are recomputed from the ledger in the same transaction.
	// Returns ErrConflict when a concurrent duplicate request wins the race.
	Toggle(ctx context.Context, target FeelingTarget, userID int64, feeling FeelingType) (FeelingResult, error)

	// CountByType aggregates the live ledger entries for the target.
	CountByType(ctx context.Context, target FeelingTarget) (FeelingCounts, error)

	// FindUserIDs returns the user IDs per feeling kind, newest first.
	FindUserIDs(ctx context.Context, target FeelingTarget, feeling FeelingType) ([]int64, error)

	// DeleteByTarget removes all entries when the target itself is deleted.
	DeleteByTarget(ctx context.Context, target FeelingTarget) error
}

// FeelingUsecase defines the business logic contract for feelings.
type FeelingUsecase interface {
	// SetFeeling toggles the acting user's feeling on a target.
	// Returns ErrNotFound if the target is absent and ErrForbidden if the
	// user is the target's author.
	SetFeeling(ctx context.Context, userID int64, target FeelingTarget, feeling FeelingType) (FeelingResult, error)

	// SetArticleFeeling resolves board/seq to the article target first.
	SetArticleFeeling(ctx context.Context, userID int64, board BoardType, seq int64, feeling FeelingType) (FeelingResult, error)

	// CountsFor is a side-effect-free read of the current projection.
	CountsFor(ctx context.Context, target FeelingTarget) (FeelingCounts, error)

	// FeelingUsers resolves the liking/disliking user lists for a target.
	FeelingUsers(ctx context.Context, target FeelingTarget) (FeelingUsers, error)

	// ArticleFeelingUsers resolves board/seq to the article target first.
	ArticleFeelingUsers(ctx context.Context, board BoardType, seq int64) (FeelingUsers, error)
}
