package api

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck. Redis is reported only when a
// client is configured.
func HealthCheckHandler(db *sqlx.DB, redisClient *redis.Client, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		services := make(map[string]entities.ServiceStatus)

		pg := entities.ServiceStatus{Status: "ok", Details: "Postgres Connected"}
		if err := db.PingContext(ctx); err != nil {
			pg = entities.ServiceStatus{Status: "down", Details: err.Error()}
		}
		services["postgres"] = pg

		if redisClient != nil {
			rs := entities.ServiceStatus{Status: "ok", Details: "Redis Connected"}
			if err := redisClient.Ping(ctx).Err(); err != nil {
				rs = entities.ServiceStatus{Status: "down", Details: err.Error()}
			}
			services["redis"] = rs
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		common.RespondJSON(w, code, entities.HealthCheckResponse{
			Status:   overallStatus,
			Services: services,
			UpSince:  upSince.UTC(),
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		})
	}
}
