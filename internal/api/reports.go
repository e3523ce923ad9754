package api

import (
	"net/http"
	"time"

	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/models/dtos/requests"
	"field-ministry/campo/internal/models/dtos/responses"
)

// ReportSummaryHandler handles GET /api/reports/summary?startDate=&endDate=&territoryId=
// Missing bounds fall back to the last 30 days.
func ReportSummaryHandler(svc ReportService, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := requests.ReportFilter{TerritoryID: q.Get("territoryId")}

		if v := q.Get("startDate"); v != "" {
			t, err := parseDateParam(v, loc, false)
			if err != nil {
				common.RespondError(w, http.StatusBadRequest, constants.MsgInvalidData, responses.FieldError{Field: "startDate", Message: err.Error()})
				return
			}
			filter.Start = t
		}
		if v := q.Get("endDate"); v != "" {
			t, err := parseDateParam(v, loc, true)
			if err != nil {
				common.RespondError(w, http.StatusBadRequest, constants.MsgInvalidData, responses.FieldError{Field: "endDate", Message: err.Error()})
				return
			}
			filter.End = t
		}

		summary, err := svc.Summary(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, err, "build report")
			return
		}
		common.RespondJSON(w, http.StatusOK, summary)
	}
}
