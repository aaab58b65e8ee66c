package model

import (
	"time"

	"github.com/jakduk/jakduk-go/domain"
)

type Article struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Board          string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_article_board_seq,priority:1"`
	Seq            int64     `gorm:"not null;uniqueIndex:idx_article_board_seq,priority:2"`
	Subject        string    `gorm:"type:varchar(60);not null"`
	Content        string    `gorm:"type:longtext;not null"`
	UserID         int64     `gorm:"column:user_id;not null"`
	Status         int8      `gorm:"default:0"`
	Views          int64     `gorm:"default:0"`
	LikingCount    int64     `gorm:"column:liking_count;default:0"`
	DislikingCount int64     `gorm:"column:disliking_count;default:0"`
	UpdatedAt      time.Time `gorm:"type:datetime"`
	CreatedAt      time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:      m.ID,
		Board:   domain.BoardType(m.Board),
		Seq:     m.Seq,
		Subject: m.Subject,
		Content: m.Content,
		Writer: domain.User{
			ID: m.UserID,
		},
		Status:         domain.ArticleStatus(m.Status),
		Views:          m.Views,
		LikingCount:    m.LikingCount,
		DislikingCount: m.DislikingCount,
		UpdatedAt:      m.UpdatedAt,
		CreatedAt:      m.CreatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:             a.ID,
		Board:          string(a.Board),
		Seq:            a.Seq,
		Subject:        a.Subject,
		Content:        a.Content,
		UserID:         a.Writer.ID,
		Status:         int8(a.Status),
		Views:          a.Views,
		LikingCount:    a.LikingCount,
		DislikingCount: a.DislikingCount,
		UpdatedAt:      a.UpdatedAt,
		CreatedAt:      a.CreatedAt,
	}
}
