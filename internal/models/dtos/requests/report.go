package requests

import "time"

// ReportFilter bounds a report to [Start, End] and optionally one territory.
type ReportFilter struct {
	Start       time.Time
	End         time.Time
	TerritoryID string
}
