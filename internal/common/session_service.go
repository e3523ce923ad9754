package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/metrics"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionData is a logged-in browser session with the provider tokens needed
// to refresh it.
type SessionData struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenExpiry  time.Time `json:"token_expiry"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AccessTokenExpired reports whether the provider access token has lapsed at now.
func (s *SessionData) AccessTokenExpired(now time.Time) bool {
	return !s.TokenExpiry.IsZero() && !now.Before(s.TokenExpiry)
}

// SessionStore persists sessions. Redis backs it in production; the in-memory
// store serves single-instance deployments and tests.
type SessionStore interface {
	CreateSession(ctx context.Context, session *SessionData) (string, error)
	GetSession(ctx context.Context, sessionID string) (*SessionData, error)
	SaveSession(ctx context.Context, session *SessionData) error
	DeleteSession(ctx context.Context, sessionID string) error
}

func newSession(session *SessionData, ttl time.Duration) {
	now := time.Now().UTC()
	session.SessionID = uuid.New().String()
	session.CreatedAt = now
	session.ExpiresAt = now.Add(ttl)
}

// SessionService manages user sessions in Redis
type SessionService struct {
	redis   *redis.Client
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
}

var _ SessionStore = (*SessionService)(nil)

func NewSessionService(redis *redis.Client, ttl time.Duration, metricsReg *metrics.MetricsRegistry) *SessionService {
	return &SessionService{redis: redis, ttl: ttl, metrics: metricsReg}
}

func sessionKey(sessionID string) string {
	return string(constants.CachePrefixSession) + sessionID
}

func (s *SessionService) CreateSession(ctx context.Context, session *SessionData) (string, error) {
	newSession(session, s.ttl)
	if err := s.SaveSession(ctx, session); err != nil {
		return "", err
	}
	logging.Debug("Session created", "session_id", session.SessionID, "user_id", session.UserID)
	return session.SessionID, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.redis.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.recordLookup(false)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	s.recordLookup(true)

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.DeleteSession(ctx, sessionID)
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// SaveSession writes the session back, keeping its original expiry.
func (s *SessionService) SaveSession(ctx context.Context, session *SessionData) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionNotFound
	}
	if err := s.redis.Set(ctx, sessionKey(session.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *SessionService) recordLookup(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixSession)).Inc()
		return
	}
	s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixSession)).Inc()
}

// MemorySessionStore keeps sessions in process memory with go-cache.
type MemorySessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

var _ SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{cache: cache.New(ttl, 10*time.Minute), ttl: ttl}
}

func (m *MemorySessionStore) CreateSession(ctx context.Context, session *SessionData) (string, error) {
	newSession(session, m.ttl)
	if err := m.SaveSession(ctx, session); err != nil {
		return "", err
	}
	return session.SessionID, nil
}

func (m *MemorySessionStore) GetSession(_ context.Context, sessionID string) (*SessionData, error) {
	val, ok := m.cache.Get(sessionKey(sessionID))
	if !ok {
		return nil, ErrSessionNotFound
	}
	stored := val.(SessionData)
	if time.Now().After(stored.ExpiresAt) {
		m.cache.Delete(sessionKey(sessionID))
		return nil, ErrSessionNotFound
	}
	return &stored, nil
}

func (m *MemorySessionStore) SaveSession(_ context.Context, session *SessionData) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionNotFound
	}
	m.cache.Set(sessionKey(session.SessionID), *session, ttl)
	return nil
}

func (m *MemorySessionStore) DeleteSession(_ context.Context, sessionID string) error {
	m.cache.Delete(sessionKey(sessionID))
	return nil
}
