package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository 데이터베이스 접근 계층
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (res domain.Article, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = article.ToDomain()
	return
}

func (m *articleRepository) GetBySeq(ctx context.Context, board domain.BoardType, seq int64) (res domain.Article, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).First(&article, "board = ? AND seq = ?", string(board), seq).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = article.ToDomain()
	return
}

// Fetch lists one board page sorted seq desc, plus the board's total count.
// An offset past the end simply returns no rows; the caller builds the
// empty page from the total.
func (m *articleRepository) Fetch(ctx context.Context, board domain.BoardType, pageNumber, pageSize int64) ([]domain.Article, int64, error) {
	var total int64
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("board = ?", string(board)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var articles []model.Article
	err = m.DB.WithContext(ctx).
		Select("id, board, seq, subject, user_id, status, views, liking_count, disliking_count, updated_at, created_at").
		Where("board = ?", string(board)).
		Order("seq desc").
		Offset(int(pageNumber * pageSize)).
		Limit(int(pageSize)).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, total, nil
}

func (m *articleRepository) FetchLatest(ctx context.Context, limit int64) ([]domain.Article, error) {
	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Select("id, board, seq, subject, user_id, status, views, liking_count, disliking_count, updated_at, created_at").
		Where("status = ?", int8(domain.ArticleActive)).
		Order("id desc").
		Limit(int(limit)).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, nil
}

// Store creates the article and assigns the next per-board seq inside one
// transaction. The MAX(seq) read is locked so two writers on the same board
// cannot pick the same number.
func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxSeq int64
		err := tx.Raw("SELECT COALESCE(MAX(seq), 0) FROM article WHERE board = ? FOR UPDATE", string(a.Board)).
			Scan(&maxSeq).Error
		if err != nil {
			return err
		}

		a.Seq = maxSeq + 1
		articleModel := model.NewArticleFromDomain(a)
		if err := tx.Create(articleModel).Error; err != nil {
			return err
		}

		a.ID = articleModel.ID
		a.CreatedAt = articleModel.CreatedAt
		a.UpdatedAt = articleModel.UpdatedAt
		return nil
	})
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Model(&articleModel).
		Select("subject", "content", "updated_at").
		Updates(&articleModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) UpdateStatus(ctx context.Context, id int64, status domain.ArticleStatus) error {
	values := map[string]any{"status": int8(status)}
	if status == domain.ArticleContentDeleted {
		values["content"] = ""
	}

	result := m.DB.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Article{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + ?", deltaViews))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
