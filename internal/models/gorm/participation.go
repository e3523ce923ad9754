package gorm

import (
	"time"

	"gorm.io/gorm"
)

type Participation struct {
	ID             string     `gorm:"column:id;primaryKey" json:"id"`
	UserID         string     `gorm:"column:user_id;not null;uniqueIndex:idx_participations_user_day" json:"userId"`
	PreachingDayID string     `gorm:"column:preaching_day_id;not null;uniqueIndex:idx_participations_user_day" json:"preachingDayId"`
	AttendedAt     *time.Time `gorm:"column:attended_at" json:"attendedAt"`
	LeftAt         *time.Time `gorm:"column:left_at" json:"leftAt"`
	Notes          *string    `gorm:"column:notes" json:"notes"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	PreachingDay *PreachingDay `gorm:"foreignKey:PreachingDayID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Participation) TableName() string {
	return "participations"
}

func (p *Participation) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
