package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/models/dtos/requests"
	"field-ministry/campo/internal/models/entities"
)

// ReportsRepo runs the aggregate report queries through sqlx.
type ReportsRepo struct {
	db *sqlx.DB
}

func NewReportsRepo(db *sqlx.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

func windowArgs(f requests.ReportFilter) []interface{} {
	return []interface{}{f.Start.UTC(), f.End.UTC(), f.TerritoryID, f.TerritoryID}
}

func (r *ReportsRepo) DayCounts(ctx context.Context, f requests.ReportFilter) (*entities.DayCounts, error) {
	var counts entities.DayCounts
	if err := r.db.GetContext(ctx, &counts, r.db.Rebind(constants.ReportDayCounts), windowArgs(f)...); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *ReportsRepo) ParticipationCount(ctx context.Context, f requests.ReportFilter) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(constants.ReportParticipationCount), windowArgs(f)...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReportsRepo) ByTerritory(ctx context.Context, f requests.ReportFilter) ([]entities.TerritoryReportRow, error) {
	rows := []entities.TerritoryReportRow{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.ReportByTerritory), windowArgs(f)...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportsRepo) ByUser(ctx context.Context, f requests.ReportFilter) ([]entities.UserReportRow, error) {
	args := append(windowArgs(f), windowArgs(f)...)

	rows := []entities.UserReportRow{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.ReportByUser), args...); err != nil {
		return nil, err
	}
	return rows, nil
}
