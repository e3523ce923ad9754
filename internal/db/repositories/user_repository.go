package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"field-ministry/campo/internal/errs"
	models "field-ministry/campo/internal/models/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	return getByID[models.User](ctx, r.db, id)
}

// List returns all users, active or not, ordered by name.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("name").Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

// Upsert inserts the user or, when the id exists, refreshes the identity
// fields. Name, role and activation are left untouched on conflict.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return r.Get(ctx, user.ID)
}

func (r *UserRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	return updateByID[models.User](ctx, r.db, id, updates)
}

// Deactivate sets is_active false. Users are never hard-deleted since
// preaching days and participations reference them.
func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": r.db.NowFunc(),
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListParticipantIDs returns the ids of users registered for a preaching day.
func (r *UserRepository) ListParticipantIDs(ctx context.Context, preachingDayID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Participation{}).
		Where("preaching_day_id = ?", preachingDayID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ids, nil
}
