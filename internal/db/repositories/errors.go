package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"field-ministry/campo/internal/errs"
)

// translateError maps GORM's translated driver errors onto the errs sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", errs.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", errs.ErrInvalidReference, err)
	}
	return err
}

// updateByID merges updates into row id of T, stamping updated_at, and
// returns the stored row. A missing id yields errs.ErrNotFound.
func updateByID[T any](ctx context.Context, db *gorm.DB, id string, updates map[string]interface{}) (*T, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		if err := applyUpdates(tx, &row, updates); err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&row).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func applyUpdates(tx *gorm.DB, model interface{}, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	values := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		values[k] = v
	}
	values["updated_at"] = tx.NowFunc()
	return tx.Model(model).Updates(values).Error
}

// deleteByID hard-deletes row id of T. A missing id yields errs.ErrNotFound.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func getByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var row T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}
