package api

import (
	"context"
	"net/http"
	"time"

	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/models/dtos/requests"
	"field-ministry/campo/internal/models/dtos/responses"
	models "field-ministry/campo/internal/models/gorm"
	"field-ministry/campo/internal/services"
)

// Handlers depend on these narrow views of the services so tests can stub them.

type TerritoryService interface {
	List(ctx context.Context) ([]models.Territory, error)
	Get(ctx context.Context, id string) (*models.Territory, error)
	Create(ctx context.Context, req *requests.CreateTerritoryReq) (*models.Territory, error)
	Update(ctx context.Context, id string, req *requests.UpdateTerritoryReq) (*models.Territory, error)
	Delete(ctx context.Context, id string) error
	ListBlocks(ctx context.Context, territoryID string) ([]models.Block, error)
	CreateBlock(ctx context.Context, req *requests.CreateBlockReq) (*models.Block, error)
	UpdateBlock(ctx context.Context, id string, req *requests.UpdateBlockReq) (*models.Block, error)
	DeleteBlock(ctx context.Context, id string) error
}

type PreachingDayService interface {
	Location() *time.Location
	List(ctx context.Context, start, end *time.Time) ([]models.PreachingDay, error)
	Get(ctx context.Context, id string) (*models.PreachingDay, error)
	Today(ctx context.Context) (*models.PreachingDay, error)
	Create(ctx context.Context, req *requests.CreatePreachingDayReq) (*models.PreachingDay, error)
	Update(ctx context.Context, id string, req *requests.UpdatePreachingDayReq) (*models.PreachingDay, error)
	Delete(ctx context.Context, id string) error

	ListParticipations(ctx context.Context, preachingDayID string) ([]models.Participation, error)
	ListUserParticipations(ctx context.Context, userID string) ([]models.Participation, error)
	CreateParticipation(ctx context.Context, req *requests.CreateParticipationReq) (*models.Participation, error)
	UpdateParticipation(ctx context.Context, id string, req *requests.UpdateParticipationReq) (*models.Participation, error)
	DeleteParticipation(ctx context.Context, id string) error

	ListWorkSessions(ctx context.Context, filter repositories.WorkSessionFilter) ([]models.WorkSession, error)
	CreateWorkSession(ctx context.Context, req *requests.CreateWorkSessionReq) (*models.WorkSession, error)
	UpdateWorkSession(ctx context.Context, id string, req *requests.UpdateWorkSessionReq) (*models.WorkSession, error)
}

type NotificationService interface {
	ListVisible(ctx context.Context, callerID string) ([]models.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]models.UserNotification, error)
	Create(ctx context.Context, req *requests.CreateNotificationReq) (*models.Notification, error)
	LinkUser(ctx context.Context, req *requests.CreateUserNotificationReq) (*models.UserNotification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Upsert(ctx context.Context, req *requests.UpsertUserReq) (*models.User, error)
	Update(ctx context.Context, id string, req *requests.UpdateUserReq) (*models.User, error)
	Deactivate(ctx context.Context, id string) error
}

type ReportService interface {
	Summary(ctx context.Context, filter requests.ReportFilter) (*responses.ReportSummary, error)
}

// FeedServer upgrades a request into a notification stream for userID.
type FeedServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID string)
}

var (
	_ TerritoryService    = (*services.TerritoryService)(nil)
	_ PreachingDayService = (*services.PreachingDayService)(nil)
	_ NotificationService = (*services.NotificationService)(nil)
	_ UserService         = (*services.UserService)(nil)
	_ ReportService       = (*services.ReportService)(nil)
)
