package requests

import (
	"time"

	"field-ministry/campo/internal/constants"
	models "field-ministry/campo/internal/models/gorm"
)

type CreateBlockReq struct {
	Number       string                `json:"number" validate:"required,max=50"`
	Status       constants.BlockStatus `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED REVISIT"`
	TerritoryID  string                `json:"territoryId" validate:"required"`
	LastWorkedAt *time.Time            `json:"lastWorkedAt"`
	Notes        *string               `json:"notes"`
}

func (r *CreateBlockReq) ToModel() *models.Block {
	status := r.Status
	if status == "" {
		status = constants.BlockPending
	}
	return &models.Block{
		Number:       r.Number,
		Status:       status,
		TerritoryID:  r.TerritoryID,
		LastWorkedAt: utcPtr(r.LastWorkedAt),
		Notes:        r.Notes,
	}
}

type UpdateBlockReq struct {
	Number       *string                `json:"number" validate:"omitempty,min=1,max=50"`
	Status       *constants.BlockStatus `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED REVISIT"`
	TerritoryID  *string                `json:"territoryId" validate:"omitempty,min=1"`
	LastWorkedAt *time.Time             `json:"lastWorkedAt"`
	Notes        *string                `json:"notes"`
}

func (r *UpdateBlockReq) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Number != nil {
		u["number"] = *r.Number
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.TerritoryID != nil {
		u["territory_id"] = *r.TerritoryID
	}
	if r.LastWorkedAt != nil {
		u["last_worked_at"] = r.LastWorkedAt.UTC()
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	return u
}
