package api

import (
	"net/http"
	"time"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/models/dtos/requests"
)

const stateTTL = 10 * time.Minute

// SessionHandlers implement the browser login flow against the identity provider.
type SessionHandlers struct {
	provider     auth.IdentityProvider
	sessions     common.SessionStore
	users        UserService
	signer       *common.StateSigner
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewSessionHandlers(
	provider auth.IdentityProvider,
	sessions common.SessionStore,
	users UserService,
	signer *common.StateSigner,
	sessionTTL time.Duration,
	cookieSecure bool,
) *SessionHandlers {
	return &SessionHandlers{
		provider:     provider,
		sessions:     sessions,
		users:        users,
		signer:       signer,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

// Login handles GET /api/login
func (h *SessionHandlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, nonce, err := h.signer.Issue()
		if err != nil {
			requestLogger(r).Errorw("Failed to issue login state", "error", err)
			common.RespondError(w, http.StatusInternalServerError, "Failed to start login")
			return
		}

		http.SetCookie(w, h.cookie(constants.StateCookieName, state, stateTTL))
		http.Redirect(w, r, h.provider.AuthCodeURL(state, nonce), http.StatusFound)
	}
}

// Callback handles GET /api/callback. Any failure sends the browser back to
// the login route.
func (h *SessionHandlers) Callback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r)
		fail := func(reason string, err error) {
			log.Warnw("Login callback rejected", "reason", reason, "error", err)
			http.Redirect(w, r, "/api/login", http.StatusFound)
		}

		state := r.URL.Query().Get("state")
		stateCookie, err := r.Cookie(constants.StateCookieName)
		if err != nil || state == "" || stateCookie.Value != state {
			fail("state mismatch", err)
			return
		}
		http.SetCookie(w, h.cookie(constants.StateCookieName, "", -1))

		nonce, err := h.signer.Validate(state)
		if err != nil {
			fail("invalid state", err)
			return
		}

		identity, tokens, err := h.provider.Exchange(r.Context(), r.URL.Query().Get("code"), nonce)
		if err != nil {
			fail("code exchange", err)
			return
		}

		user, err := h.users.Upsert(r.Context(), &requests.UpsertUserReq{
			ID:              identity.Subject,
			Email:           optional(identity.Email),
			FirstName:       optional(identity.FirstName),
			LastName:        optional(identity.LastName),
			ProfileImageURL: optional(identity.ProfileImageURL),
		})
		if err != nil {
			fail("user upsert", err)
			return
		}

		sessionID, err := h.sessions.CreateSession(r.Context(), &common.SessionData{
			UserID:       user.ID,
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			TokenExpiry:  tokens.Expiry,
		})
		if err != nil {
			fail("session create", err)
			return
		}

		http.SetCookie(w, h.cookie(constants.SessionCookieName, sessionID, h.sessionTTL))
		logging.Info("Login completed", "user_id", user.ID)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// Logout handles GET /api/logout
func (h *SessionHandlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(constants.SessionCookieName); err == nil && c.Value != "" {
			if err := h.sessions.DeleteSession(r.Context(), c.Value); err != nil {
				requestLogger(r).Warnw("Failed to delete session", "error", err)
			}
		}
		http.SetCookie(w, h.cookie(constants.SessionCookieName, "", -1))
		http.Redirect(w, r, h.provider.EndSessionURL(baseURL(r)+"/"), http.StatusFound)
	}
}

// cookie builds an HTTP-only cookie; a negative ttl expires it.
func (h *SessionHandlers) cookie(name, value string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		c.MaxAge = -1
	} else {
		c.MaxAge = int(ttl.Seconds())
	}
	return c
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
