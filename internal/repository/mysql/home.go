package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/repository/mysql/model"
)

type galleryRepository struct {
	DB *gorm.DB
}

var _ domain.GalleryRepository = (*galleryRepository)(nil)

func NewGalleryRepository(db *gorm.DB) *galleryRepository {
	return &galleryRepository{db}
}

func (g *galleryRepository) FetchLatest(ctx context.Context, limit int64) ([]domain.Gallery, error) {
	var galleries []model.Gallery
	err := g.DB.WithContext(ctx).
		Order("id desc").
		Limit(int(limit)).
		Find(&galleries).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Gallery, len(galleries))
	for i := range galleries {
		res[i] = galleries[i].ToDomain()
	}
	return res, nil
}

type encyclopediaRepository struct {
	DB *gorm.DB
}

var _ domain.EncyclopediaRepository = (*encyclopediaRepository)(nil)

func NewEncyclopediaRepository(db *gorm.DB) *encyclopediaRepository {
	return &encyclopediaRepository{db}
}

// GetRandom 해당 언어의 백과사전 항목 하나를 무작위로 고른다
func (e *encyclopediaRepository) GetRandom(ctx context.Context, language string) (domain.Encyclopedia, error) {
	var entry model.Encyclopedia
	err := e.DB.WithContext(ctx).
		Where("language = ?", language).
		Order("RAND()").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Encyclopedia{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Encyclopedia{}, err
	}
	return entry.ToDomain(), nil
}

type homeDescriptionRepository struct {
	DB *gorm.DB
}

var _ domain.HomeDescriptionRepository = (*homeDescriptionRepository)(nil)

func NewHomeDescriptionRepository(db *gorm.DB) *homeDescriptionRepository {
	return &homeDescriptionRepository{db}
}

func (h *homeDescriptionRepository) GetRandom(ctx context.Context) (string, error) {
	var desc model.HomeDescription
	err := h.DB.WithContext(ctx).
		Order("priority desc, RAND()").
		First(&desc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// no description configured is not an error for the home page
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return desc.Description, nil
}
