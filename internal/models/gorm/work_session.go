package gorm

import (
	"time"

	"gorm.io/gorm"
)

type WorkSession struct {
	ID             string     `gorm:"column:id;primaryKey" json:"id"`
	PreachingDayID string     `gorm:"column:preaching_day_id;not null;index" json:"preachingDayId"`
	BlockID        string     `gorm:"column:block_id;not null;index" json:"blockId"`
	StartedAt      time.Time  `gorm:"column:started_at;not null" json:"startedAt"`
	FinishedAt     *time.Time `gorm:"column:finished_at" json:"finishedAt"`
	Notes          *string    `gorm:"column:notes" json:"notes"`
	HousesVisited  int        `gorm:"column:houses_visited;not null;default:0" json:"housesVisited"`
	ContactsMade   int        `gorm:"column:contacts_made;not null;default:0" json:"contactsMade"`
	MaterialsLeft  int        `gorm:"column:materials_left;not null;default:0" json:"materialsLeft"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	PreachingDay *PreachingDay `gorm:"foreignKey:PreachingDayID;constraint:OnDelete:CASCADE" json:"-"`
	Block        *Block        `gorm:"foreignKey:BlockID" json:"-"`
}

// TableName specifies the table name for GORM
func (WorkSession) TableName() string {
	return "work_sessions"
}

func (s *WorkSession) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	if s.StartedAt.IsZero() {
		s.StartedAt = tx.NowFunc()
	}
	return nil
}
