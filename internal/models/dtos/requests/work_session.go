package requests

import (
	"time"

	models "field-ministry/campo/internal/models/gorm"
)

type CreateWorkSessionReq struct {
	PreachingDayID string     `json:"preachingDayId" validate:"required"`
	BlockID        string     `json:"blockId" validate:"required"`
	StartedAt      *time.Time `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt"`
	Notes          *string    `json:"notes"`
	HousesVisited  *int       `json:"housesVisited" validate:"omitempty,min=0"`
	ContactsMade   *int       `json:"contactsMade" validate:"omitempty,min=0"`
	MaterialsLeft  *int       `json:"materialsLeft" validate:"omitempty,min=0"`
}

func (r *CreateWorkSessionReq) ToModel() *models.WorkSession {
	s := &models.WorkSession{
		PreachingDayID: r.PreachingDayID,
		BlockID:        r.BlockID,
		FinishedAt:     utcPtr(r.FinishedAt),
		Notes:          r.Notes,
	}
	if r.StartedAt != nil {
		s.StartedAt = r.StartedAt.UTC()
	}
	if r.HousesVisited != nil {
		s.HousesVisited = *r.HousesVisited
	}
	if r.ContactsMade != nil {
		s.ContactsMade = *r.ContactsMade
	}
	if r.MaterialsLeft != nil {
		s.MaterialsLeft = *r.MaterialsLeft
	}
	return s
}

type UpdateWorkSessionReq struct {
	PreachingDayID *string    `json:"preachingDayId" validate:"omitempty,min=1"`
	BlockID        *string    `json:"blockId" validate:"omitempty,min=1"`
	StartedAt      *time.Time `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt"`
	Notes          *string    `json:"notes"`
	HousesVisited  *int       `json:"housesVisited" validate:"omitempty,min=0"`
	ContactsMade   *int       `json:"contactsMade" validate:"omitempty,min=0"`
	MaterialsLeft  *int       `json:"materialsLeft" validate:"omitempty,min=0"`
}

func (r *UpdateWorkSessionReq) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.PreachingDayID != nil {
		u["preaching_day_id"] = *r.PreachingDayID
	}
	if r.BlockID != nil {
		u["block_id"] = *r.BlockID
	}
	if r.StartedAt != nil {
		u["started_at"] = r.StartedAt.UTC()
	}
	if r.FinishedAt != nil {
		u["finished_at"] = r.FinishedAt.UTC()
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	if r.HousesVisited != nil {
		u["houses_visited"] = *r.HousesVisited
	}
	if r.ContactsMade != nil {
		u["contacts_made"] = *r.ContactsMade
	}
	if r.MaterialsLeft != nil {
		u["materials_left"] = *r.MaterialsLeft
	}
	return u
}
