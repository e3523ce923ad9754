package requests

import (
	"time"

	models "field-ministry/campo/internal/models/gorm"
)

type CreateParticipationReq struct {
	UserID         string     `json:"userId" validate:"required"`
	PreachingDayID string     `json:"preachingDayId" validate:"required"`
	AttendedAt     *time.Time `json:"attendedAt"`
	LeftAt         *time.Time `json:"leftAt"`
	Notes          *string    `json:"notes"`
}

func (r *CreateParticipationReq) ToModel() *models.Participation {
	return &models.Participation{
		UserID:         r.UserID,
		PreachingDayID: r.PreachingDayID,
		AttendedAt:     utcPtr(r.AttendedAt),
		LeftAt:         utcPtr(r.LeftAt),
		Notes:          r.Notes,
	}
}

type UpdateParticipationReq struct {
	UserID         *string    `json:"userId" validate:"omitempty,min=1"`
	PreachingDayID *string    `json:"preachingDayId" validate:"omitempty,min=1"`
	AttendedAt     *time.Time `json:"attendedAt"`
	LeftAt         *time.Time `json:"leftAt"`
	Notes          *string    `json:"notes"`
}

func (r *UpdateParticipationReq) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.UserID != nil {
		u["user_id"] = *r.UserID
	}
	if r.PreachingDayID != nil {
		u["preaching_day_id"] = *r.PreachingDayID
	}
	if r.AttendedAt != nil {
		u["attended_at"] = r.AttendedAt.UTC()
	}
	if r.LeftAt != nil {
		u["left_at"] = r.LeftAt.UTC()
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	return u
}
