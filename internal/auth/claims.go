package auth

import "field-ministry/campo/internal/constants"

// UserClaims is the resolved caller of a request, whichever way it authenticated.
type UserClaims interface {
	UserID() string
	Role() constants.UserRole
	Source() constants.RequestSource
}

// SessionClaims come from a browser session established through OIDC login.
type SessionClaims struct {
	UserUUID  string
	RoleValue constants.UserRole
	SessionID string
}

func (c *SessionClaims) UserID() string                  { return c.UserUUID }
func (c *SessionClaims) Role() constants.UserRole        { return c.RoleValue }
func (c *SessionClaims) Source() constants.RequestSource { return constants.RequestSourceSession }

// APIKeyClaims come from an X-API-Key header; the key acts as its owning user.
type APIKeyClaims struct {
	UserUUID  string
	RoleValue constants.UserRole
	KeyID     string
}

func (c *APIKeyClaims) UserID() string                  { return c.UserUUID }
func (c *APIKeyClaims) Role() constants.UserRole        { return c.RoleValue }
func (c *APIKeyClaims) Source() constants.RequestSource { return constants.RequestSourceAPIKey }
