package gorm

import (
	"field-ministry/campo/internal/constants"
	"time"

	"gorm.io/gorm"
)

type PreachingDay struct {
	ID            string              `gorm:"column:id;primaryKey" json:"id"`
	Date          time.Time           `gorm:"column:date;uniqueIndex;not null" json:"date"`
	DepartureTime string              `gorm:"column:departure_time;not null" json:"departureTime"`
	MeetingPlace  string              `gorm:"column:meeting_place;not null" json:"meetingPlace"`
	LeaderID      string              `gorm:"column:leader_id;not null" json:"leaderId"`
	TerritoryID   *string             `gorm:"column:territory_id" json:"territoryId"`
	Status        constants.DayStatus `gorm:"column:status;not null;default:SCHEDULED" json:"status"`
	Notes         *string             `gorm:"column:notes" json:"notes"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	Leader    *User      `gorm:"foreignKey:LeaderID" json:"-"`
	Territory *Territory `gorm:"foreignKey:TerritoryID" json:"-"`
}

// TableName specifies the table name for GORM
func (PreachingDay) TableName() string {
	return "preaching_days"
}

func (d *PreachingDay) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}
