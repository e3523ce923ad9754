package repositories

import (
	"context"

	"gorm.io/gorm"

	"field-ministry/campo/internal/errs"
	models "field-ministry/campo/internal/models/gorm"
)

type TerritoryRepository struct {
	db *gorm.DB
}

func NewTerritoryRepository(db *gorm.DB) *TerritoryRepository {
	return &TerritoryRepository{db: db}
}

// List returns active territories ordered by name.
func (r *TerritoryRepository) List(ctx context.Context) ([]models.Territory, error) {
	var territories []models.Territory
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&territories).Error
	if err != nil {
		return nil, translateError(err)
	}
	return territories, nil
}

// Get returns the territory whether or not it was soft-deleted.
func (r *TerritoryRepository) Get(ctx context.Context, id string) (*models.Territory, error) {
	return getByID[models.Territory](ctx, r.db, id)
}

// rollupColumns are written only by recomputeRollups.
var rollupColumns = []string{"total_blocks", "completed_blocks", "completion_rate"}

// Create inserts the territory with empty rollups; it has no blocks yet.
func (r *TerritoryRepository) Create(ctx context.Context, territory *models.Territory) error {
	territory.TotalBlocks = 0
	territory.CompletedBlocks = 0
	territory.CompletionRate = 0
	return translateError(r.db.WithContext(ctx).Create(territory).Error)
}

// Update merges updates into territory id. Rollup columns in updates are
// ignored.
func (r *TerritoryRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Territory, error) {
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		filtered[k] = v
	}
	for _, col := range rollupColumns {
		delete(filtered, col)
	}
	return updateByID[models.Territory](ctx, r.db, id, filtered)
}

// SoftDelete flips is_active off; the row stays readable through Get.
func (r *TerritoryRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Territory{}).
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
