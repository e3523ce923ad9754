package services

import (
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/dbtest"
	models "field-ministry/campo/internal/models/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, *sqlx.DB) {
	return dbtest.Open(t)
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func seedUser(t *testing.T, gdb *gorm.DB, id string, role constants.UserRole) *models.User {
	t.Helper()
	u := &models.User{ID: id, Name: "User " + id, Role: role, IsActive: true}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

// recordingPublisher captures pushes instead of writing to sockets.
type recordingPublisher struct {
	mu      sync.Mutex
	global  []string
	targets map[string][]string
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{targets: map[string][]string{}}
}

func (p *recordingPublisher) PublishGlobal(n *models.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.global = append(p.global, n.ID)
}

func (p *recordingPublisher) PublishToUsers(userIDs []string, n *models.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.targets[n.ID] = append(p.targets[n.ID], userIDs...)
}
