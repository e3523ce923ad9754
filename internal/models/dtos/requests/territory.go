package requests

import (
	"time"

	models "field-ministry/campo/internal/models/gorm"
)

// Block counts and the completion rate are not accepted here; block writes
// maintain them.
type CreateTerritoryReq struct {
	Name         string     `json:"name" validate:"required,max=200"`
	MapImageURL  *string    `json:"mapImageUrl" validate:"omitempty,max=2048"`
	LastWorkedAt *time.Time `json:"lastWorkedAt"`
	IsActive     *bool      `json:"isActive"`
	Description  *string    `json:"description"`
	Coordinates  *string    `json:"coordinates"`
}

func (r *CreateTerritoryReq) ToModel() *models.Territory {
	t := &models.Territory{
		Name:         r.Name,
		MapImageURL:  r.MapImageURL,
		LastWorkedAt: utcPtr(r.LastWorkedAt),
		IsActive:     true,
		Description:  r.Description,
		Coordinates:  r.Coordinates,
	}
	if r.IsActive != nil {
		t.IsActive = *r.IsActive
	}
	return t
}

type UpdateTerritoryReq struct {
	Name         *string    `json:"name" validate:"omitempty,min=1,max=200"`
	MapImageURL  *string    `json:"mapImageUrl" validate:"omitempty,max=2048"`
	LastWorkedAt *time.Time `json:"lastWorkedAt"`
	IsActive     *bool      `json:"isActive"`
	Description  *string    `json:"description"`
	Coordinates  *string    `json:"coordinates"`
}

// Updates returns the provided fields keyed by column name.
func (r *UpdateTerritoryReq) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.MapImageURL != nil {
		u["map_image_url"] = *r.MapImageURL
	}
	if r.LastWorkedAt != nil {
		u["last_worked_at"] = r.LastWorkedAt.UTC()
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Coordinates != nil {
		u["coordinates"] = *r.Coordinates
	}
	return u
}
