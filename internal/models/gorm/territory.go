package gorm

import (
	"time"

	"gorm.io/gorm"
)

type Territory struct {
	ID              string     `gorm:"column:id;primaryKey" json:"id"`
	Name            string     `gorm:"column:name;uniqueIndex;not null" json:"name"`
	MapImageURL     *string    `gorm:"column:map_image_url" json:"mapImageUrl"`
	TotalBlocks     int        `gorm:"column:total_blocks;not null;default:0" json:"totalBlocks"`
	CompletedBlocks int        `gorm:"column:completed_blocks;not null;default:0" json:"completedBlocks"`
	CompletionRate  int        `gorm:"column:completion_rate;not null;default:0" json:"completionRate"`
	LastWorkedAt    *time.Time `gorm:"column:last_worked_at" json:"lastWorkedAt"`
	IsActive        bool       `gorm:"column:is_active;not null;default:true" json:"isActive"`
	Description     *string    `gorm:"column:description" json:"description"`
	Coordinates     *string    `gorm:"column:coordinates" json:"coordinates"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Territory) TableName() string {
	return "territories"
}

func (t *Territory) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// CompletionPercent is the integer percentage of completed blocks, 0 when there are none.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}
