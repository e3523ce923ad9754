package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"field-ministry/campo/internal/constants"
	models "field-ministry/campo/internal/models/gorm"
)

func requireSameInstant(t *testing.T, want time.Time, got *time.Time) {
	t.Helper()
	require.NotNil(t, got)
	require.True(t, want.Equal(*got), "want %s, got %s", want, *got)
}

func requireStamped(t *testing.T, id string, createdAt, updatedAt time.Time) {
	t.Helper()
	require.NotEmpty(t, id)
	require.False(t, createdAt.IsZero())
	require.False(t, updatedAt.IsZero())
}

func TestPreachingDayRepository_CreateGetRoundTrip(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewPreachingDayRepository(gdb)
	ctx := context.Background()

	leader := seedUser(t, gdb, "leader", constants.RoleLeader)
	tr := seedTerritory(t, gdb, "North")
	notes := "Bring tracts"
	date := time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)

	in := &models.PreachingDay{
		Date:          date,
		DepartureTime: "08:30",
		MeetingPlace:  "Kingdom Hall",
		LeaderID:      leader.ID,
		TerritoryID:   &tr.ID,
		Status:        constants.DayConfirmed,
		Notes:         &notes,
	}
	require.NoError(t, repo.Create(ctx, in, time.UTC))

	got, err := repo.Get(ctx, in.ID)
	require.NoError(t, err)
	requireStamped(t, got.ID, got.CreatedAt, got.UpdatedAt)
	requireSameInstant(t, date, &got.Date)
	require.Equal(t, "08:30", got.DepartureTime)
	require.Equal(t, "Kingdom Hall", got.MeetingPlace)
	require.Equal(t, leader.ID, got.LeaderID)
	require.NotNil(t, got.TerritoryID)
	require.Equal(t, tr.ID, *got.TerritoryID)
	require.Equal(t, constants.DayConfirmed, got.Status)
	require.NotNil(t, got.Notes)
	require.Equal(t, notes, *got.Notes)

	bare := &models.PreachingDay{
		Date:          date.AddDate(0, 0, 1),
		DepartureTime: "09:00",
		MeetingPlace:  "Square",
		LeaderID:      leader.ID,
	}
	require.NoError(t, repo.Create(ctx, bare, time.UTC))
	got, err = repo.Get(ctx, bare.ID)
	require.NoError(t, err)
	require.Nil(t, got.TerritoryID)
	require.Nil(t, got.Notes)
	require.Equal(t, constants.DayScheduled, got.Status)
}

func TestParticipationRepository_CreateGetRoundTrip(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewParticipationRepository(gdb)
	ctx := context.Background()

	leader := seedUser(t, gdb, "leader", constants.RoleLeader)
	member := seedUser(t, gdb, "member", constants.RoleMember)
	day := seedDay(t, gdb, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), leader.ID, nil)

	attended := time.Date(2024, 3, 5, 9, 5, 0, 0, time.UTC)
	notes := "Arrived by bus"
	in := &models.Participation{UserID: member.ID, PreachingDayID: day.ID, AttendedAt: &attended, Notes: &notes}
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.Get(ctx, in.ID)
	require.NoError(t, err)
	requireStamped(t, got.ID, got.CreatedAt, got.UpdatedAt)
	require.Equal(t, member.ID, got.UserID)
	require.Equal(t, day.ID, got.PreachingDayID)
	requireSameInstant(t, attended, got.AttendedAt)
	require.Nil(t, got.LeftAt)
	require.NotNil(t, got.Notes)
	require.Equal(t, notes, *got.Notes)
}

func TestWorkSessionRepository_CreateGetRoundTrip(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewWorkSessionRepository(gdb)
	ctx := context.Background()

	leader := seedUser(t, gdb, "leader", constants.RoleLeader)
	tr := seedTerritory(t, gdb, "North")
	day := seedDay(t, gdb, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), leader.ID, &tr.ID)
	block := &models.Block{Number: "7", Status: constants.BlockInProgress, TerritoryID: tr.ID}
	require.NoError(t, NewBlockRepository(gdb).Create(ctx, block))

	started := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	finished := time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC)
	notes := "Gate 3 closed"
	in := &models.WorkSession{
		PreachingDayID: day.ID,
		BlockID:        block.ID,
		StartedAt:      started,
		FinishedAt:     &finished,
		Notes:          &notes,
		HousesVisited:  24,
		ContactsMade:   6,
		MaterialsLeft:  10,
	}
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.Get(ctx, in.ID)
	require.NoError(t, err)
	requireStamped(t, got.ID, got.CreatedAt, got.UpdatedAt)
	require.Equal(t, day.ID, got.PreachingDayID)
	require.Equal(t, block.ID, got.BlockID)
	requireSameInstant(t, started, &got.StartedAt)
	requireSameInstant(t, finished, got.FinishedAt)
	require.NotNil(t, got.Notes)
	require.Equal(t, notes, *got.Notes)
	require.Equal(t, 24, got.HousesVisited)
	require.Equal(t, 6, got.ContactsMade)
	require.Equal(t, 10, got.MaterialsLeft)
}

func TestNotificationRepository_CreateGetRoundTrip(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewNotificationRepository(gdb)
	ctx := context.Background()

	expires := time.Date(2024, 3, 6, 23, 59, 59, 0, time.UTC)
	in := &models.Notification{
		Title:     "Saída cancelada",
		Message:   "Chuva forte",
		Type:      constants.NotificationWarning,
		IsGlobal:  true,
		ExpiresAt: &expires,
	}
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.Get(ctx, in.ID)
	require.NoError(t, err)
	requireStamped(t, got.ID, got.CreatedAt, got.UpdatedAt)
	require.Equal(t, in.Title, got.Title)
	require.Equal(t, in.Message, got.Message)
	require.Equal(t, constants.NotificationWarning, got.Type)
	require.True(t, got.IsGlobal)
	requireSameInstant(t, expires, got.ExpiresAt)

	open := &models.Notification{Title: "Bem-vindo", Message: "Olá", Type: constants.NotificationInfo}
	require.NoError(t, repo.Create(ctx, open))
	got, err = repo.Get(ctx, open.ID)
	require.NoError(t, err)
	require.False(t, got.IsGlobal)
	require.Nil(t, got.ExpiresAt)
}
