package model

import (
	"time"

	"github.com/jakduk/jakduk-go/domain"
)

// Feeling is one ledger row. The unique index over (target, user) is what
// serializes concurrent duplicate toggles.
type Feeling struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	TargetType int8      `gorm:"column:target_type;not null;uniqueIndex:idx_feeling_target_user,priority:1"`
	TargetID   int64     `gorm:"column:target_id;not null;uniqueIndex:idx_feeling_target_user,priority:2"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:idx_feeling_target_user,priority:3"`
	Feeling    int8      `gorm:"column:feeling;not null"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Feeling) TableName() string {
	return "feeling"
}

func NewFeelingFromDomain(e domain.FeelingEntry) Feeling {
	return Feeling{
		TargetType: int8(e.TargetType),
		TargetID:   e.TargetID,
		UserID:     e.UserID,
		Feeling:    int8(e.Feeling),
		CreatedAt:  e.CreatedAt,
	}
}

func (m *Feeling) ToDomain() domain.FeelingEntry {
	return domain.FeelingEntry{
		TargetType: domain.TargetType(m.TargetType),
		TargetID:   m.TargetID,
		UserID:     m.UserID,
		Feeling:    domain.FeelingType(m.Feeling),
		CreatedAt:  m.CreatedAt,
	}
}
