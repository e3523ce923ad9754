package responses

import "time"

type TerritoryStats struct {
	TerritoryID string  `json:"territoryId"`
	Name        string  `json:"name"`
	Activities  int     `json:"activities"`
	Completed   int     `json:"completed"`
	Rate        float64 `json:"rate"`
}

type UserStats struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Participations int    `json:"participations"`
	Leadership     int    `json:"leadership"`
}

type ReportSummary struct {
	StartDate           time.Time        `json:"startDate"`
	EndDate             time.Time        `json:"endDate"`
	TotalActivities     int              `json:"totalActivities"`
	CompletedActivities int              `json:"completedActivities"`
	CompletionRate      float64          `json:"completionRate"`
	TotalParticipations int              `json:"totalParticipations"`
	Territories         []TerritoryStats `json:"territories"`
	Users               []UserStats      `json:"users"`
}
