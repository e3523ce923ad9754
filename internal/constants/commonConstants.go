package constants

type (
	RequestSource string
	CachePrefix   string
)

const (
	RequestSourceSession RequestSource = "SESSION"
	RequestSourceAPIKey  RequestSource = "API_KEY"

	CachePrefixSession      CachePrefix = "session:"
	CachePrefixReminderSent CachePrefix = "REMINDER_SENT_"

	SessionCookieName = "session_id"
	StateCookieName   = "oidc_state"
	DefaultUserName   = "Usuário"
)
