package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/models/dtos/requests"
)

// ListDayParticipationsHandler handles GET /api/preaching-days/{id}/participations
func ListDayParticipationsHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participations, err := svc.ListParticipations(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err, "fetch participations")
			return
		}
		common.RespondJSON(w, http.StatusOK, participations)
	}
}

// ListUserParticipationsHandler handles GET /api/users/{id}/participations.
// Ownership is checked by the policy middleware on the route.
func ListUserParticipationsHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participations, err := svc.ListUserParticipations(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err, "fetch user participations")
			return
		}
		common.RespondJSON(w, http.StatusOK, participations)
	}
}

// CreateParticipationHandler handles POST /api/participations. The target user
// comes from the body, so the policy is evaluated after validation.
func CreateParticipationHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateParticipationReq
		if !decodeBody(w, r, &req) {
			return
		}

		err := auth.Authorize(auth.GetUserClaims(r.Context()), auth.ActionCreate, auth.ResourceParticipation, req.UserID)
		if err != nil {
			if errors.Is(err, errs.ErrUnauthorized) {
				common.RespondError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
				return
			}
			common.RespondError(w, http.StatusForbidden, constants.MsgForbidden)
			return
		}

		participation, err := svc.CreateParticipation(r.Context(), &req)
		if err != nil {
			respondServiceError(w, r, err, "create participation")
			return
		}
		common.RespondJSON(w, http.StatusCreated, participation)
	}
}

func UpdateParticipationHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateParticipationReq
		if !decodeBody(w, r, &req) {
			return
		}
		participation, err := svc.UpdateParticipation(r.Context(), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err, "update participation")
			return
		}
		common.RespondJSON(w, http.StatusOK, participation)
	}
}

func DeleteParticipationHandler(svc PreachingDayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteParticipation(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err, "delete participation")
			return
		}
		common.RespondNoContent(w)
	}
}
