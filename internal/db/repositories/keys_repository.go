package repositories

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/models/entities"
)

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

// HashKey is the stored form of a raw API key.
func HashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// GetStatus looks a raw key up by its hash.
func (r *KeysRepo) GetStatus(ctx context.Context, rawKey string) (*entities.ApiKey, error) {
	var keyRes entities.ApiKey

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(constants.GetApiKeyByHash), HashKey(rawKey)).StructScan(&keyRes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &keyRes, nil
}

// Insert stores a new key for userID and returns its record. Only the hash of
// rawKey is persisted.
func (r *KeysRepo) Insert(ctx context.Context, id, rawKey, userID, label string) (*entities.ApiKey, error) {
	key := &entities.ApiKey{
		ID:        id,
		KeyHash:   HashKey(rawKey),
		UserID:    userID,
		Label:     label,
		Status:    true,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, r.db.Rebind(constants.InsertApiKey),
		key.ID, key.KeyHash, key.UserID, key.Label, key.Status, key.CreatedAt)
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (r *KeysRepo) Touch(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(constants.TouchApiKey), at.UTC(), id)
	return err
}
