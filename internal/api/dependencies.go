package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/config"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/jobs"
	"field-ministry/campo/internal/metrics"
	"field-ministry/campo/internal/realtime"
	"field-ministry/campo/internal/services"
)

type Repositories struct {
	Territories    *repositories.TerritoryRepository
	Blocks         *repositories.BlockRepository
	PreachingDays  *repositories.PreachingDayRepository
	Participations *repositories.ParticipationRepository
	WorkSessions   *repositories.WorkSessionRepository
	Notifications  *repositories.NotificationRepository
	Users          *repositories.UserRepository
	Keys           *repositories.KeysRepo
	Reports        *repositories.ReportsRepo
}

type Services struct {
	Territories   *services.TerritoryService
	PreachingDays *services.PreachingDayService
	Notifications *services.NotificationService
	Users         *services.UserService
	Reports       *services.ReportService
	Sessions      common.SessionStore
	Cache         common.CacheInterface
	StateSigner   *common.StateSigner
}

type Dependencies struct {
	Config   *config.Config
	SQL      *sqlx.DB
	Redis    *redis.Client
	Metrics  *metrics.MetricsRegistry
	Provider auth.IdentityProvider
	Hub      *realtime.Hub
	Reminder *jobs.ReminderJob
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories, services and the notification hub.
// redisClient may be nil when SESSION_BACKEND=memory; sessions and the shared
// cache then live in process memory.
func InitDependencies(
	cfg *config.Config,
	gdb *gorm.DB,
	sdb *sqlx.DB,
	redisClient *redis.Client,
	provider auth.IdentityProvider,
	metricsReg *metrics.MetricsRegistry,
) *Dependencies {
	repos := &Repositories{
		Territories:    repositories.NewTerritoryRepository(gdb),
		Blocks:         repositories.NewBlockRepository(gdb),
		PreachingDays:  repositories.NewPreachingDayRepository(gdb),
		Participations: repositories.NewParticipationRepository(gdb),
		WorkSessions:   repositories.NewWorkSessionRepository(gdb),
		Notifications:  repositories.NewNotificationRepository(gdb),
		Users:          repositories.NewUserRepository(gdb),
		Keys:           repositories.NewApiKeysRepo(sdb),
		Reports:        repositories.NewReportsRepo(sdb),
	}

	var (
		sessions common.SessionStore
		cache    common.CacheInterface
	)
	if redisClient != nil {
		sessions = common.NewSessionService(redisClient, cfg.SessionTTL, metricsReg)
		cache = common.NewRedisCacheService(redisClient)
	} else {
		sessions = common.NewMemorySessionStore(cfg.SessionTTL)
		cache = common.NewCacheService(3600, 600)
	}

	hub := realtime.NewHub(cfg.CORSAllowedOrigins, metricsReg)
	clock := services.SystemClock

	svcs := &Services{
		Territories:   services.NewTerritoryService(repos.Territories, repos.Blocks, metricsReg),
		PreachingDays: services.NewPreachingDayService(repos.PreachingDays, repos.Participations, repos.WorkSessions, cfg.Location, clock, metricsReg),
		Notifications: services.NewNotificationService(repos.Notifications, hub, clock, metricsReg),
		Users:         services.NewUserService(repos.Users),
		Reports:       services.NewReportService(repos.Reports, clock),
		Sessions:      sessions,
		Cache:         cache,
		StateSigner:   common.NewStateSigner([]byte(cfg.SessionSecret), stateTTL),
	}

	return &Dependencies{
		Config:   cfg,
		SQL:      sdb,
		Redis:    redisClient,
		Metrics:  metricsReg,
		Provider: provider,
		Hub:      hub,
		Reminder: jobs.NewReminderJob(svcs.PreachingDays, repos.Users, svcs.Notifications, cache, clock, metricsReg),
		Repo:     repos,
		Services: svcs,
	}
}
