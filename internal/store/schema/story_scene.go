package schema

import (
	"time"

	"gorm.io/datatypes"
)

// StoryScene stores one content-managed narrative scene
type StoryScene struct {
	ID              string         `gorm:"primaryKey;type:text"`
	Title           string         `gorm:"type:text;not null"`
	Description     string         `gorm:"type:text"`
	Content         string         `gorm:"type:text;not null"`
	RequiredNFTs    datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	DisplayOrder    int            `gorm:"not null;default:0;index"`
	ImageURL        string         `gorm:"type:text"`
	BlendID         string         `gorm:"type:text"`
	CinematicEffect string         `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (StoryScene) TableName() string {
	return "story_scenes"
}
