package services

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/models/dtos/requests"
	"field-ministry/campo/internal/models/dtos/responses"
	"field-ministry/campo/internal/models/entities"
)

const defaultReportWindow = 30 * 24 * time.Hour

type ReportService struct {
	repo *repositories.ReportsRepo
	now  Clock
}

func NewReportService(repo *repositories.ReportsRepo, now Clock) *ReportService {
	if now == nil {
		now = SystemClock
	}
	return &ReportService{repo: repo, now: now}
}

// Summary aggregates preaching days in the filter window. Zero bounds default
// to the last 30 days ending now.
func (s *ReportService) Summary(ctx context.Context, filter requests.ReportFilter) (*responses.ReportSummary, error) {
	if filter.End.IsZero() {
		filter.End = s.now()
	}
	if filter.Start.IsZero() {
		filter.Start = filter.End.Add(-defaultReportWindow)
	}

	var (
		counts         *entities.DayCounts
		participations int
		territoryRows  []entities.TerritoryReportRow
		userRows       []entities.UserReportRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.repo.DayCounts(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		participations, err = s.repo.ParticipationCount(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		territoryRows, err = s.repo.ByTerritory(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		userRows, err = s.repo.ByUser(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &responses.ReportSummary{
		StartDate:           filter.Start.UTC(),
		EndDate:             filter.End.UTC(),
		TotalActivities:     counts.Total,
		CompletedActivities: counts.Completed,
		CompletionRate:      percent(counts.Completed, counts.Total),
		TotalParticipations: participations,
		Territories:         make([]responses.TerritoryStats, 0, len(territoryRows)),
		Users:               make([]responses.UserStats, 0, len(userRows)),
	}
	for _, row := range territoryRows {
		summary.Territories = append(summary.Territories, responses.TerritoryStats{
			TerritoryID: row.TerritoryID,
			Name:        row.TerritoryName,
			Activities:  row.Activities,
			Completed:   row.Completed,
			Rate:        percent(row.Completed, row.Activities),
		})
	}
	for _, row := range userRows {
		summary.Users = append(summary.Users, responses.UserStats{
			UserID:         row.UserID,
			Name:           row.Name,
			Participations: row.Participations,
			Leadership:     row.Leadership,
		})
	}
	return summary, nil
}

// percent rounds to one decimal place.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(total)) / 10
}
