package mysql

import (
	"context"
	"errors"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/repository/mysql/model"
)

const mysqlErrDuplicateEntry = 1062

type feelingRepository struct {
	DB *gorm.DB
}

var _ domain.FeelingRepository = (*feelingRepository)(nil)

// NewFeelingRepository creates the ledger persistence layer.
func NewFeelingRepository(db *gorm.DB) *feelingRepository {
	return &feelingRepository{db}
}

func (r *feelingRepository) FindEntry(ctx context.Context, target domain.FeelingTarget, userID int64) (domain.FeelingEntry, error) {
	var entry model.Feeling
	err := r.DB.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND user_id = ?", int8(target.Type), target.ID, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FeelingEntry{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.FeelingEntry{}, err
	}
	return entry.ToDomain(), nil
}

// Toggle applies one feeling mutation and reprojects the counts in a single
// transaction. The row lock on the (target, user) entry plus the unique
// index keep duplicate concurrent requests from producing two entries.
func (r *feelingRepository) Toggle(ctx context.Context, target domain.FeelingTarget, userID int64, feeling domain.FeelingType) (domain.FeelingResult, error) {
	var res domain.FeelingResult

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry model.Feeling
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("target_type = ? AND target_id = ? AND user_id = ?", int8(target.Type), target.ID, userID).
			First(&entry).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry = model.NewFeelingFromDomain(domain.FeelingEntry{
				TargetType: target.Type,
				TargetID:   target.ID,
				UserID:     userID,
				Feeling:    feeling,
				CreatedAt:  time.Now(),
			})
			if err := tx.Create(&entry).Error; err != nil {
				if isDuplicateEntry(err) {
					return domain.ErrConflict
				}
				return err
			}
			res.MyFeeling = feeling

		case err != nil:
			return err

		case entry.Feeling == int8(feeling):
			// 같은 감정 반복 -> 취소
			if err := tx.Delete(&model.Feeling{}, entry.ID).Error; err != nil {
				return err
			}
			res.MyFeeling = domain.FeelingNone

		default:
			// switch LIKE <-> DISLIKE, never both rows
			if err := tx.Model(&model.Feeling{}).
				Where("id = ?", entry.ID).
				Update("feeling", int8(feeling)).Error; err != nil {
				return err
			}
			res.MyFeeling = feeling
		}

		counts, err := countByType(tx, target)
		if err != nil {
			return err
		}
		res.Counts = counts

		return projectCounts(tx, target, counts)
	})

	if err != nil {
		return domain.FeelingResult{}, err
	}
	return res, nil
}

func (r *feelingRepository) CountByType(ctx context.Context, target domain.FeelingTarget) (domain.FeelingCounts, error) {
	return countByType(r.DB.WithContext(ctx), target)
}

func (r *feelingRepository) FindUserIDs(ctx context.Context, target domain.FeelingTarget, feeling domain.FeelingType) ([]int64, error) {
	var ids []int64
	err := r.DB.WithContext(ctx).
		Model(&model.Feeling{}).
		Select("user_id").
		Where("target_type = ? AND target_id = ? AND feeling = ?", int8(target.Type), target.ID, int8(feeling)).
		Order("id desc").
		Find(&ids).Error
	return ids, err
}

func (r *feelingRepository) DeleteByTarget(ctx context.Context, target domain.FeelingTarget) error {
	return r.DB.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", int8(target.Type), target.ID).
		Delete(&model.Feeling{}).Error
}

// countByType aggregates the live ledger rows grouped by feeling kind.
func countByType(tx *gorm.DB, target domain.FeelingTarget) (domain.FeelingCounts, error) {
	var rows []struct {
		Feeling int8
		Total   int64
	}
	err := tx.Model(&model.Feeling{}).
		Select("feeling, count(*) as total").
		Where("target_type = ? AND target_id = ?", int8(target.Type), target.ID).
		Group("feeling").
		Find(&rows).Error
	if err != nil {
		return domain.FeelingCounts{}, err
	}

	var counts domain.FeelingCounts
	for _, row := range rows {
		switch domain.FeelingType(row.Feeling) {
		case domain.FeelingLike:
			counts.Likes = row.Total
		case domain.FeelingDislike:
			counts.Dislikes = row.Total
		}
	}
	return counts, nil
}

// projectCounts writes the recomputed aggregate onto the target row. Always
// derived from the ledger in the same transaction, never incremented ad hoc.
func projectCounts(tx *gorm.DB, target domain.FeelingTarget, counts domain.FeelingCounts) error {
	values := map[string]any{
		"liking_count":    counts.Likes,
		"disliking_count": counts.Dislikes,
	}

	switch target.Type {
	case domain.TargetArticle:
		return tx.Model(&model.Article{}).Where("id = ?", target.ID).Updates(values).Error
	case domain.TargetComment:
		return tx.Model(&model.Comment{}).Where("id = ?", target.ID).Updates(values).Error
	default:
		return domain.ErrBadParamInput
	}
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *driver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}
