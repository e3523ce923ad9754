package entities

import "time"

// ServiceStatus is the health of one backing service.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	UpSince  time.Time                `json:"upSince"`
	Uptime   string                   `json:"uptime"`
}
