package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/models/dtos/requests"
)

// ListWorkSessionsHandler handles GET /api/work-sessions?preachingDayId=&blockId=
func ListWorkSessionsHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := repositories.WorkSessionFilter{
			PreachingDayID: r.URL.Query().Get("preachingDayId"),
			BlockID:        r.URL.Query().Get("blockId"),
		}
		sessions, err := svc.ListWorkSessions(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, err, "fetch work sessions")
			return
		}
		common.RespondJSON(w, http.StatusOK, sessions)
	}
}

func CreateWorkSessionHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateWorkSessionReq
		if !decodeBody(w, r, &req) {
			return
		}
		session, err := svc.CreateWorkSession(r.Context(), &req)
		if err != nil {
			respondServiceError(w, r, err, "create work session")
			return
		}
		common.RespondJSON(w, http.StatusCreated, session)
	}
}

func UpdateWorkSessionHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateWorkSessionReq
		if !decodeBody(w, r, &req) {
			return
		}
		session, err := svc.UpdateWorkSession(r.Context(), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err, "update work session")
			return
		}
		common.RespondJSON(w, http.StatusOK, session)
	}
}
