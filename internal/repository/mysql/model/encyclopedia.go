package model

import "github.com/jakduk/jakduk-go/domain"

type Encyclopedia struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Seq      int64  `gorm:"not null;index:idx_encyclopedia_lang_seq,priority:2"`
	Language string `gorm:"type:varchar(5);not null;index:idx_encyclopedia_lang_seq,priority:1"`
	Subject  string `gorm:"type:varchar(60);not null"`
	Content  string `gorm:"type:text;not null"`
}

func (Encyclopedia) TableName() string {
	return "encyclopedia"
}

func (m *Encyclopedia) ToDomain() domain.Encyclopedia {
	return domain.Encyclopedia{
		ID:       m.ID,
		Seq:      m.Seq,
		Language: m.Language,
		Subject:  m.Subject,
		Content:  m.Content,
	}
}

// HomeDescription 홈 화면에 보여줄 사이트 설명
type HomeDescription struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"type:text;not null"`
	Priority    int    `gorm:"default:0"`
}

func (HomeDescription) TableName() string {
	return "home_description"
}
