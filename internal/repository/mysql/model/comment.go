package model

import (
	"time"

	"github.com/jakduk/jakduk-go/domain"
)

type Comment struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID      int64     `gorm:"column:article_id;not null;index"`
	UserID         int64     `gorm:"column:user_id;not null"`
	Content        string    `gorm:"type:text;not null"`
	LikingCount    int64     `gorm:"column:liking_count;default:0"`
	DislikingCount int64     `gorm:"column:disliking_count;default:0"`
	CreatedAt      time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:             c.ID,
		ArticleID:      c.ArticleID,
		UserID:         c.UserID,
		Content:        c.Content,
		LikingCount:    c.LikingCount,
		DislikingCount: c.DislikingCount,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:             m.ID,
		ArticleID:      m.ArticleID,
		UserID:         m.UserID,
		Content:        m.Content,
		LikingCount:    m.LikingCount,
		DislikingCount: m.DislikingCount,
		CreatedAt:      m.CreatedAt,
	}
}
