package services

import (
	"context"
	"errors"
	"time"

	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/metrics"
	"field-ministry/campo/internal/models/dtos/requests"
	models "field-ministry/campo/internal/models/gorm"
)

// PreachingDayService owns preaching days and the participations and work
// sessions recorded against them.
type PreachingDayService struct {
	days           *repositories.PreachingDayRepository
	participations *repositories.ParticipationRepository
	sessions       *repositories.WorkSessionRepository
	location       *time.Location
	now            Clock
	metrics        *metrics.MetricsRegistry
}

func NewPreachingDayService(
	days *repositories.PreachingDayRepository,
	participations *repositories.ParticipationRepository,
	sessions *repositories.WorkSessionRepository,
	location *time.Location,
	now Clock,
	metricsReg *metrics.MetricsRegistry,
) *PreachingDayService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = SystemClock
	}
	return &PreachingDayService{
		days:           days,
		participations: participations,
		sessions:       sessions,
		location:       location,
		now:            now,
		metrics:        metricsReg,
	}
}

// Location is the zone calendar days are computed in.
func (s *PreachingDayService) Location() *time.Location {
	return s.location
}

func (s *PreachingDayService) List(ctx context.Context, start, end *time.Time) ([]models.PreachingDay, error) {
	return s.days.List(ctx, start, end)
}

func (s *PreachingDayService) Get(ctx context.Context, id string) (*models.PreachingDay, error) {
	return s.days.Get(ctx, id)
}

// Today returns the preaching day scheduled for the current calendar day, or
// nil when there is none.
func (s *PreachingDayService) Today(ctx context.Context) (*models.PreachingDay, error) {
	return s.OnDate(ctx, s.now())
}

// OnDate returns the preaching day on t's calendar day, or nil.
func (s *PreachingDayService) OnDate(ctx context.Context, t time.Time) (*models.PreachingDay, error) {
	day, err := s.days.GetByDate(ctx, t, s.location)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	return day, err
}

func (s *PreachingDayService) Create(ctx context.Context, req *requests.CreatePreachingDayReq) (*models.PreachingDay, error) {
	day := req.ToModel()
	if err := s.days.Create(ctx, day, s.location); err != nil {
		return nil, err
	}
	s.metrics.Created("preaching_day")
	logging.Info("Preaching day scheduled", "preaching_day_id", day.ID, "date", day.Date, "leader_id", day.LeaderID)
	return day, nil
}

func (s *PreachingDayService) Update(ctx context.Context, id string, req *requests.UpdatePreachingDayReq) (*models.PreachingDay, error) {
	return s.days.Update(ctx, id, req.Updates(), s.location)
}

func (s *PreachingDayService) Delete(ctx context.Context, id string) error {
	if err := s.days.Delete(ctx, id); err != nil {
		return err
	}
	logging.Info("Preaching day deleted", "preaching_day_id", id)
	return nil
}

func (s *PreachingDayService) ListParticipations(ctx context.Context, preachingDayID string) ([]models.Participation, error) {
	return s.participations.ListByDay(ctx, preachingDayID)
}

func (s *PreachingDayService) ListUserParticipations(ctx context.Context, userID string) ([]models.Participation, error) {
	return s.participations.ListByUser(ctx, userID)
}

func (s *PreachingDayService) CreateParticipation(ctx context.Context, req *requests.CreateParticipationReq) (*models.Participation, error) {
	participation := req.ToModel()
	if err := s.participations.Create(ctx, participation); err != nil {
		return nil, err
	}
	s.metrics.Created("participation")
	return participation, nil
}

func (s *PreachingDayService) UpdateParticipation(ctx context.Context, id string, req *requests.UpdateParticipationReq) (*models.Participation, error) {
	return s.participations.Update(ctx, id, req.Updates())
}

func (s *PreachingDayService) DeleteParticipation(ctx context.Context, id string) error {
	return s.participations.Delete(ctx, id)
}

func (s *PreachingDayService) ListWorkSessions(ctx context.Context, filter repositories.WorkSessionFilter) ([]models.WorkSession, error) {
	return s.sessions.List(ctx, filter)
}

func (s *PreachingDayService) CreateWorkSession(ctx context.Context, req *requests.CreateWorkSessionReq) (*models.WorkSession, error) {
	session := req.ToModel()
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	s.metrics.Created("work_session")
	return session, nil
}

func (s *PreachingDayService) UpdateWorkSession(ctx context.Context, id string, req *requests.UpdateWorkSessionReq) (*models.WorkSession, error) {
	return s.sessions.Update(ctx, id, req.Updates())
}
