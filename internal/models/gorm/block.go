package gorm

import (
	"field-ministry/campo/internal/constants"
	"time"

	"gorm.io/gorm"
)

type Block struct {
	ID           string                `gorm:"column:id;primaryKey" json:"id"`
	Number       string                `gorm:"column:number;not null;uniqueIndex:idx_blocks_territory_number,priority:2" json:"number"`
	Status       constants.BlockStatus `gorm:"column:status;not null;default:PENDING" json:"status"`
	TerritoryID  string                `gorm:"column:territory_id;not null;uniqueIndex:idx_blocks_territory_number,priority:1" json:"territoryId"`
	LastWorkedAt *time.Time            `gorm:"column:last_worked_at" json:"lastWorkedAt"`
	Notes        *string               `gorm:"column:notes" json:"notes"`
	CreatedAt    time.Time             `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	Territory *Territory `gorm:"foreignKey:TerritoryID" json:"-"`
}

// TableName specifies the table name for GORM
func (Block) TableName() string {
	return "blocks"
}

func (b *Block) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}
