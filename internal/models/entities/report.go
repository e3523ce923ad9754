package entities

// DayCounts is the aggregate row for preaching days within a report window.
type DayCounts struct {
	Total     int `db:"total"`
	Completed int `db:"completed"`
}

type TerritoryReportRow struct {
	TerritoryID   string `db:"territory_id"`
	TerritoryName string `db:"territory_name"`
	Activities    int    `db:"activities"`
	Completed     int    `db:"completed"`
}

type UserReportRow struct {
	UserID         string `db:"user_id"`
	Name           string `db:"name"`
	Participations int    `db:"participations"`
	Leadership     int    `db:"leadership"`
}
