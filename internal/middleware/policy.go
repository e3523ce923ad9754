package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/errs"
)

// RequirePolicy checks the policy table before dispatch. ownerParam names the
// URL parameter holding the targeted user id; leave it empty when the route
// targets no particular user.
func RequirePolicy(action auth.Action, resource auth.Resource, ownerParam string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ownerID string
			if ownerParam != "" {
				ownerID = chi.URLParam(r, ownerParam)
			}

			err := auth.Authorize(auth.GetUserClaims(r.Context()), action, resource, ownerID)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, errs.ErrUnauthorized):
				common.RespondError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
			default:
				common.RespondError(w, http.StatusForbidden, constants.MsgForbidden)
			}
		})
	}
}
