package model

import (
	"time"

	"github.com/jakduk/jakduk-go/domain"
)

type Gallery struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(60);not null"`
	FileName  string    `gorm:"column:file_name;type:varchar(255);not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Gallery) TableName() string {
	return "gallery"
}

func (m *Gallery) ToDomain() domain.Gallery {
	return domain.Gallery{
		ID:        m.ID,
		Name:      m.Name,
		FileName:  m.FileName,
		WriterID:  m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
