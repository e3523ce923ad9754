package requests

import (
	"time"

	"field-ministry/campo/internal/constants"
	models "field-ministry/campo/internal/models/gorm"
)

type CreatePreachingDayReq struct {
	Date          *time.Time          `json:"date" validate:"required"`
	DepartureTime string              `json:"departureTime" validate:"required,max=20"`
	MeetingPlace  string              `json:"meetingPlace" validate:"required"`
	LeaderID      string              `json:"leaderId" validate:"required"`
	TerritoryID   *string             `json:"territoryId" validate:"omitempty,min=1"`
	Status        constants.DayStatus `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
	Notes         *string             `json:"notes"`
}

func (r *CreatePreachingDayReq) ToModel() *models.PreachingDay {
	status := r.Status
	if status == "" {
		status = constants.DayScheduled
	}
	return &models.PreachingDay{
		Date:          r.Date.UTC(),
		DepartureTime: r.DepartureTime,
		MeetingPlace:  r.MeetingPlace,
		LeaderID:      r.LeaderID,
		TerritoryID:   r.TerritoryID,
		Status:        status,
		Notes:         r.Notes,
	}
}

type UpdatePreachingDayReq struct {
	Date          *time.Time           `json:"date"`
	DepartureTime *string              `json:"departureTime" validate:"omitempty,min=1,max=20"`
	MeetingPlace  *string              `json:"meetingPlace" validate:"omitempty,min=1"`
	LeaderID      *string              `json:"leaderId" validate:"omitempty,min=1"`
	TerritoryID   *string              `json:"territoryId" validate:"omitempty,min=1"`
	Status        *constants.DayStatus `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
	Notes         *string              `json:"notes"`
}

func (r *UpdatePreachingDayReq) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Date != nil {
		u["date"] = r.Date.UTC()
	}
	if r.DepartureTime != nil {
		u["departure_time"] = *r.DepartureTime
	}
	if r.MeetingPlace != nil {
		u["meeting_place"] = *r.MeetingPlace
	}
	if r.LeaderID != nil {
		u["leader_id"] = *r.LeaderID
	}
	if r.TerritoryID != nil {
		u["territory_id"] = *r.TerritoryID
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	return u
}
