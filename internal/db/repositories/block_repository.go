package repositories

import (
	"context"

	"gorm.io/gorm"

	"field-ministry/campo/internal/constants"
	models "field-ministry/campo/internal/models/gorm"
)

// BlockRepository keeps the owning territory's block counters in step with
// every block write, inside the same transaction.
type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// ListByTerritory returns a territory's blocks ordered by number.
func (r *BlockRepository) ListByTerritory(ctx context.Context, territoryID string) ([]models.Block, error) {
	var blocks []models.Block
	err := r.db.WithContext(ctx).
		Where("territory_id = ?", territoryID).
		Order("number").
		Find(&blocks).Error
	if err != nil {
		return nil, translateError(err)
	}
	return blocks, nil
}

func (r *BlockRepository) Get(ctx context.Context, id string) (*models.Block, error) {
	return getByID[models.Block](ctx, r.db, id)
}

func (r *BlockRepository) Create(ctx context.Context, block *models.Block) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(block).Error; err != nil {
			return err
		}
		return recomputeRollups(tx, block.TerritoryID)
	})
	return translateError(err)
}

// Update merges updates into the block. When the block moves to another
// territory both territories are recomputed.
func (r *BlockRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Block, error) {
	var block models.Block
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&block).Error; err != nil {
			return err
		}
		previousTerritory := block.TerritoryID

		if err := applyUpdates(tx, &block, updates); err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).First(&block).Error; err != nil {
			return err
		}

		if err := recomputeRollups(tx, block.TerritoryID); err != nil {
			return err
		}
		if previousTerritory != block.TerritoryID {
			return recomputeRollups(tx, previousTerritory)
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &block, nil
}

func (r *BlockRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var block models.Block
		if err := tx.Where("id = ?", id).First(&block).Error; err != nil {
			return err
		}
		if err := tx.Delete(&block).Error; err != nil {
			return err
		}
		return recomputeRollups(tx, block.TerritoryID)
	})
	return translateError(err)
}

// recomputeRollups rewrites total_blocks, completed_blocks and
// completion_rate of one territory from its current blocks.
func recomputeRollups(tx *gorm.DB, territoryID string) error {
	var total, completed int64
	if err := tx.Model(&models.Block{}).
		Where("territory_id = ?", territoryID).
		Count(&total).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Block{}).
		Where("territory_id = ? AND status = ?", territoryID, constants.BlockCompleted).
		Count(&completed).Error; err != nil {
		return err
	}

	return tx.Model(&models.Territory{}).
		Where("id = ?", territoryID).
		Updates(map[string]interface{}{
			"total_blocks":     total,
			"completed_blocks": completed,
			"completion_rate":  models.CompletionPercent(int(completed), int(total)),
			"updated_at":       tx.NowFunc(),
		}).Error
}
