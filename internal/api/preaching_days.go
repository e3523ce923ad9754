package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/models/dtos/requests"
	"field-ministry/campo/internal/models/dtos/responses"
)

const dateOnly = "2006-01-02"

// parseDateParam accepts RFC 3339 or a bare date. A bare date is read in loc
// and, when endOfDay is set, moved to the last instant of that day.
func parseDateParam(value string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(dateOnly, value, loc)
	if err != nil {
		return time.Time{}, errors.New("must be an RFC 3339 timestamp or YYYY-MM-DD")
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t.UTC(), nil
}

// ListPreachingDaysHandler handles GET /api/preaching-days?startDate=&endDate=
// The range applies only when both bounds are given.
func ListPreachingDaysHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var start, end *time.Time
		startParam := r.URL.Query().Get("startDate")
		endParam := r.URL.Query().Get("endDate")

		if startParam != "" && endParam != "" {
			s, err := parseDateParam(startParam, svc.Location(), false)
			if err != nil {
				common.RespondError(w, http.StatusBadRequest, constants.MsgInvalidData, responses.FieldError{Field: "startDate", Message: err.Error()})
				return
			}
			e, err := parseDateParam(endParam, svc.Location(), true)
			if err != nil {
				common.RespondError(w, http.StatusBadRequest, constants.MsgInvalidData, responses.FieldError{Field: "endDate", Message: err.Error()})
				return
			}
			start, end = &s, &e
		}

		days, err := svc.List(r.Context(), start, end)
		if err != nil {
			respondServiceError(w, r, err, "fetch preaching days")
			return
		}
		common.RespondJSON(w, http.StatusOK, days)
	}
}

// TodayPreachingDayHandler handles GET /api/preaching-days/today. The body is
// null when nothing is scheduled.
func TodayPreachingDayHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := svc.Today(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "fetch today's preaching day")
			return
		}
		common.RespondJSON(w, http.StatusOK, day)
	}
}

func GetPreachingDayHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err, "fetch preaching day")
			return
		}
		common.RespondJSON(w, http.StatusOK, day)
	}
}

func CreatePreachingDayHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreatePreachingDayReq
		if !decodeBody(w, r, &req) {
			return
		}
		day, err := svc.Create(r.Context(), &req)
		if err != nil {
			respondServiceError(w, r, err, "create preaching day")
			return
		}
		common.RespondJSON(w, http.StatusCreated, day)
	}
}

func UpdatePreachingDayHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdatePreachingDayReq
		if !decodeBody(w, r, &req) {
			return
		}
		day, err := svc.Update(r.Context(), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err, "update preaching day")
			return
		}
		common.RespondJSON(w, http.StatusOK, day)
	}
}

// DeletePreachingDayHandler handles DELETE /api/preaching-days/{id}; its
// participations and work sessions go with it.
func DeletePreachingDayHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err, "delete preaching day")
			return
		}
		common.RespondNoContent(w)
	}
}
