package schema

import (
	"time"

	"gorm.io/datatypes"
)

// UserProgress stores per-account story state. The scene/blend sets are kept
// as JSON arrays; the tables are tiny and only ever read whole-row.
type UserProgress struct {
	AccountName     string         `gorm:"primaryKey;type:text"`
	UnlockedScenes  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CompletedBlends datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	LastUpdated     time.Time      `gorm:"not null"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
