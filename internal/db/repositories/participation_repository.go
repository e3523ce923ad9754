package repositories

import (
	"context"

	"gorm.io/gorm"

	models "field-ministry/campo/internal/models/gorm"
)

type ParticipationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

// ListByDay returns a preaching day's participations, newest first.
func (r *ParticipationRepository) ListByDay(ctx context.Context, preachingDayID string) ([]models.Participation, error) {
	return r.list(ctx, "preaching_day_id = ?", preachingDayID)
}

// ListByUser returns a user's participations, newest first.
func (r *ParticipationRepository) ListByUser(ctx context.Context, userID string) ([]models.Participation, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *ParticipationRepository) list(ctx context.Context, where string, arg string) ([]models.Participation, error) {
	var participations []models.Participation
	err := r.db.WithContext(ctx).
		Where(where, arg).
		Order("created_at DESC").
		Find(&participations).Error
	if err != nil {
		return nil, translateError(err)
	}
	return participations, nil
}

func (r *ParticipationRepository) Get(ctx context.Context, id string) (*models.Participation, error) {
	return getByID[models.Participation](ctx, r.db, id)
}

// Create inserts the participation. A second row for the same user and day is
// rejected with errs.ErrAlreadyExists.
func (r *ParticipationRepository) Create(ctx context.Context, participation *models.Participation) error {
	return translateError(r.db.WithContext(ctx).Create(participation).Error)
}

func (r *ParticipationRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Participation, error) {
	return updateByID[models.Participation](ctx, r.db, id, updates)
}

func (r *ParticipationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[models.Participation](ctx, r.db, id)
}
