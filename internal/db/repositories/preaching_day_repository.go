package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"field-ministry/campo/internal/errs"
	models "field-ministry/campo/internal/models/gorm"
)

type PreachingDayRepository struct {
	db *gorm.DB
}

func NewPreachingDayRepository(db *gorm.DB) *PreachingDayRepository {
	return &PreachingDayRepository{db: db}
}

// List returns preaching days ordered by date. The inclusive [start, end]
// window applies only when both bounds are given.
func (r *PreachingDayRepository) List(ctx context.Context, start, end *time.Time) ([]models.PreachingDay, error) {
	q := r.db.WithContext(ctx)
	if start != nil && end != nil {
		q = q.Where("date >= ? AND date <= ?", start.UTC(), end.UTC())
	}

	var days []models.PreachingDay
	if err := q.Order("date ASC").Find(&days).Error; err != nil {
		return nil, translateError(err)
	}
	return days, nil
}

func (r *PreachingDayRepository) Get(ctx context.Context, id string) (*models.PreachingDay, error) {
	return getByID[models.PreachingDay](ctx, r.db, id)
}

// GetByDate returns the day whose date falls on the same calendar day as t in
// loc, or errs.ErrNotFound.
func (r *PreachingDayRepository) GetByDate(ctx context.Context, t time.Time, loc *time.Location) (*models.PreachingDay, error) {
	start, end := DayBounds(t, loc)

	var day models.PreachingDay
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		First(&day).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &day, nil
}

// Create inserts the day. A day already scheduled on the same calendar day in
// loc, at any time, yields errs.ErrAlreadyExists.
func (r *PreachingDayRepository) Create(ctx context.Context, day *models.PreachingDay, loc *time.Location) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFreeDate(tx, day.Date, "", loc); err != nil {
			return err
		}
		return tx.Create(day).Error
	})
	return translateError(err)
}

// Update merges updates into day id. Moving the day onto a calendar day that
// is already taken yields errs.ErrAlreadyExists.
func (r *PreachingDayRepository) Update(ctx context.Context, id string, updates map[string]interface{}, loc *time.Location) (*models.PreachingDay, error) {
	var day models.PreachingDay
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&day).Error; err != nil {
			return err
		}
		if date, ok := updates["date"].(time.Time); ok {
			if err := ensureFreeDate(tx, date, id, loc); err != nil {
				return err
			}
		}
		if err := applyUpdates(tx, &day, updates); err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&day).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &day, nil
}

// ensureFreeDate fails when a day other than exceptID falls on date's calendar
// day in loc. On Postgres a transaction-scoped advisory lock on the calendar
// day serialises concurrent writers for the same date.
func ensureFreeDate(tx *gorm.DB, date time.Time, exceptID string, loc *time.Location) error {
	start, end := DayBounds(date, loc)

	if tx.Dialector.Name() == "postgres" {
		key := "preaching_day:" + start.Format(time.RFC3339)
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
			return err
		}
	}

	q := tx.Model(&models.PreachingDay{}).Where("date >= ? AND date <= ?", start, end)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: a preaching day is already scheduled on %s", errs.ErrAlreadyExists, date.In(locOrUTC(loc)).Format("2006-01-02"))
	}
	return nil
}

func locOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// Delete removes the day; participations and work sessions go with it through
// ON DELETE CASCADE.
func (r *PreachingDayRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[models.PreachingDay](ctx, r.db, id)
}

// DayBounds returns local midnight and the last nanosecond of t's calendar day
// in loc, both in UTC.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	loc = locOrUTC(loc)
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start.UTC(), end.UTC()
}
