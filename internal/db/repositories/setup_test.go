package repositories

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/dbtest"
	models "field-ministry/campo/internal/models/gorm"
)

// setupTestDB returns GORM and sqlx handles over one in-memory SQLite database.
func setupTestDB(t *testing.T) (*gorm.DB, *sqlx.DB) {
	return dbtest.Open(t)
}

func seedUser(t *testing.T, gdb *gorm.DB, id string, role constants.UserRole) *models.User {
	t.Helper()
	u := &models.User{ID: id, Name: "User " + id, Role: role, IsActive: true}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

func seedTerritory(t *testing.T, gdb *gorm.DB, name string) *models.Territory {
	t.Helper()
	tr := &models.Territory{Name: name, IsActive: true}
	require.NoError(t, gdb.Create(tr).Error)
	return tr
}

func seedDay(t *testing.T, gdb *gorm.DB, date time.Time, leaderID string, territoryID *string) *models.PreachingDay {
	t.Helper()
	d := &models.PreachingDay{
		Date:          date,
		DepartureTime: "09:00",
		MeetingPlace:  "Kingdom Hall",
		LeaderID:      leaderID,
		TerritoryID:   territoryID,
		Status:        constants.DayScheduled,
	}
	require.NoError(t, gdb.Create(d).Error)
	return d
}
