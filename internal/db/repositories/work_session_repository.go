package repositories

import (
	"context"

	"gorm.io/gorm"

	models "field-ministry/campo/internal/models/gorm"
)

type WorkSessionFilter struct {
	PreachingDayID string
	BlockID        string
}

type WorkSessionRepository struct {
	db *gorm.DB
}

func NewWorkSessionRepository(db *gorm.DB) *WorkSessionRepository {
	return &WorkSessionRepository{db: db}
}

// List returns work sessions matching the non-empty filter fields, most
// recently started first.
func (r *WorkSessionRepository) List(ctx context.Context, filter WorkSessionFilter) ([]models.WorkSession, error) {
	q := r.db.WithContext(ctx)
	if filter.PreachingDayID != "" {
		q = q.Where("preaching_day_id = ?", filter.PreachingDayID)
	}
	if filter.BlockID != "" {
		q = q.Where("block_id = ?", filter.BlockID)
	}

	var sessions []models.WorkSession
	if err := q.Order("started_at DESC").Find(&sessions).Error; err != nil {
		return nil, translateError(err)
	}
	return sessions, nil
}

func (r *WorkSessionRepository) Get(ctx context.Context, id string) (*models.WorkSession, error) {
	return getByID[models.WorkSession](ctx, r.db, id)
}

// Create inserts the session and stamps last_worked_at on its block and on the
// block's territory in the same transaction.
func (r *WorkSessionRepository) Create(ctx context.Context, session *models.WorkSession) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}

		var block models.Block
		if err := tx.Where("id = ?", session.BlockID).First(&block).Error; err != nil {
			return err
		}

		now := tx.NowFunc()
		if err := tx.Model(&block).Updates(map[string]interface{}{
			"last_worked_at": session.StartedAt,
			"updated_at":     now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Territory{}).
			Where("id = ?", block.TerritoryID).
			Updates(map[string]interface{}{
				"last_worked_at": session.StartedAt,
				"updated_at":     now,
			}).Error
	})
	return translateError(err)
}

func (r *WorkSessionRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.WorkSession, error) {
	return updateByID[models.WorkSession](ctx, r.db, id, updates)
}
