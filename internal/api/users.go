package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/models/dtos/requests"
)

// CurrentUserHandler handles GET /api/auth/user
func CurrentUserHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), auth.CallerID(r.Context()))
		if err != nil {
			respondServiceError(w, r, err, "fetch user")
			return
		}
		common.RespondJSON(w, http.StatusOK, user)
	}
}

func ListUsersHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "fetch users")
			return
		}
		common.RespondJSON(w, http.StatusOK, users)
	}
}

// UpdateUserHandler handles PATCH /api/users/{id} (admin only).
func UpdateUserHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateUserReq
		if !decodeBody(w, r, &req) {
			return
		}
		user, err := svc.Update(r.Context(), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err, "update user")
			return
		}
		common.RespondJSON(w, http.StatusOK, user)
	}
}

// DeactivateUserHandler handles DELETE /api/users/{id} (admin only).
func DeactivateUserHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err, "deactivate user")
			return
		}
		common.RespondNoContent(w)
	}
}
