package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/logging"
	models "field-ministry/campo/internal/models/gorm"
)

const apiKeyHeader = "X-API-Key"

// AuthMiddleware resolves the caller from an X-API-Key header or the session
// cookie. Expired provider tokens are refreshed in place; a session that
// cannot be refreshed is rejected. Roles are read from the users table on
// every request so role changes apply immediately.
func AuthMiddleware(
	sessions common.SessionStore,
	userRepo *repositories.UserRepository,
	keysRepo *repositories.KeysRepo,
	provider auth.IdentityProvider,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var (
				claims auth.UserClaims
				err    error
			)
			if apiKey := r.Header.Get(apiKeyHeader); apiKey != "" {
				claims, err = claimsFromAPIKey(ctx, keysRepo, userRepo, apiKey)
			} else {
				claims, err = claimsFromSession(ctx, r, sessions, userRepo, provider)
			}

			switch {
			case err == nil:
			case errors.Is(err, errs.ErrAccountDisabled):
				common.RespondError(w, http.StatusForbidden, constants.MsgAccountDisabled)
				return
			case errors.Is(err, errs.ErrUnauthorized):
				common.RespondError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
				return
			default:
				logging.Error("Authentication failed",
					"request_id", auth.GetRequestID(ctx),
					"endpoint", r.URL.Path,
					"error", err,
				)
				common.RespondError(w, http.StatusInternalServerError, "Failed to authenticate")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.SetUserClaims(ctx, claims)))
		})
	}
}

func claimsFromAPIKey(ctx context.Context, keysRepo *repositories.KeysRepo, userRepo *repositories.UserRepository, rawKey string) (auth.UserClaims, error) {
	key, err := keysRepo.GetStatus(ctx, rawKey)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !key.Status {
		return nil, errs.ErrUnauthorized
	}

	user, err := activeUser(ctx, userRepo, key.UserID)
	if err != nil {
		return nil, err
	}

	if err := keysRepo.Touch(ctx, key.ID, time.Now().UTC()); err != nil {
		logging.Warn("Failed to record API key use", "key_id", key.ID, "error", err)
	}
	return &auth.APIKeyClaims{UserUUID: user.ID, RoleValue: user.Role, KeyID: key.ID}, nil
}

func claimsFromSession(
	ctx context.Context,
	r *http.Request,
	sessions common.SessionStore,
	userRepo *repositories.UserRepository,
	provider auth.IdentityProvider,
) (auth.UserClaims, error) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, errs.ErrUnauthorized
	}

	session, err := sessions.GetSession(ctx, cookie.Value)
	if errors.Is(err, common.ErrSessionNotFound) {
		return nil, errs.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if session.AccessTokenExpired(time.Now()) {
		if err := refreshSession(ctx, sessions, provider, session); err != nil {
			return nil, err
		}
	}

	user, err := activeUser(ctx, userRepo, session.UserID)
	if err != nil {
		return nil, err
	}
	return &auth.SessionClaims{UserUUID: user.ID, RoleValue: user.Role, SessionID: session.SessionID}, nil
}

func refreshSession(ctx context.Context, sessions common.SessionStore, provider auth.IdentityProvider, session *common.SessionData) error {
	if session.RefreshToken == "" || provider == nil {
		return errs.ErrUnauthorized
	}

	tokens, err := provider.Refresh(ctx, session.RefreshToken)
	if err != nil {
		logging.Info("Session refresh rejected", "session_id", session.SessionID, "error", err)
		return errs.ErrUnauthorized
	}

	session.AccessToken = tokens.AccessToken
	session.TokenExpiry = tokens.Expiry
	if tokens.RefreshToken != "" {
		session.RefreshToken = tokens.RefreshToken
	}
	if err := sessions.SaveSession(ctx, session); err != nil {
		if errors.Is(err, common.ErrSessionNotFound) {
			return errs.ErrUnauthorized
		}
		return err
	}
	return nil
}

func activeUser(ctx context.Context, userRepo *repositories.UserRepository, userID string) (*models.User, error) {
	user, err := userRepo.Get(ctx, userID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, errs.ErrAccountDisabled
	}
	return user, nil
}
