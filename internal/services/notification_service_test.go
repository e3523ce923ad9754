package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/models/dtos/requests"
	models "field-ministry/campo/internal/models/gorm"
)

func TestNotificationService_CreateGlobalPublishes(t *testing.T) {
	gdb, _ := setupTestDB(t)
	seedUser(t, gdb, "u1", constants.RoleMember)
	pub := newRecordingPublisher()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewNotificationService(repositories.NewNotificationRepository(gdb), pub, fixedClock(now), nil)
	ctx := context.Background()

	global := true
	n, err := svc.Create(ctx, &requests.CreateNotificationReq{Title: "Aviso", Message: "Saída às 8h", IsGlobal: &global})
	require.NoError(t, err)
	require.Equal(t, constants.NotificationInfo, n.Type)
	require.Equal(t, []string{n.ID}, pub.global)

	visible, err := svc.ListVisible(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, visible, 1)
}

func TestNotificationService_ExpiredIsHidden(t *testing.T) {
	gdb, _ := setupTestDB(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewNotificationService(repositories.NewNotificationRepository(gdb), nil, fixedClock(now), nil)
	ctx := context.Background()

	global := true
	expired := now.Add(-time.Minute)
	_, err := svc.Create(ctx, &requests.CreateNotificationReq{Title: "Old", Message: "gone", IsGlobal: &global, ExpiresAt: &expired})
	require.NoError(t, err)

	visible, err := svc.ListVisible(ctx, "")
	require.NoError(t, err)
	require.Empty(t, visible)
}

func TestNotificationService_LinkUserPublishesToRecipient(t *testing.T) {
	gdb, _ := setupTestDB(t)
	seedUser(t, gdb, "u1", constants.RoleMember)
	seedUser(t, gdb, "u2", constants.RoleMember)
	pub := newRecordingPublisher()
	svc := NewNotificationService(repositories.NewNotificationRepository(gdb), pub, nil, nil)
	ctx := context.Background()

	n, err := svc.Create(ctx, &requests.CreateNotificationReq{Title: "Pessoal", Message: "Só para você"})
	require.NoError(t, err)
	require.Empty(t, pub.global)

	visible, err := svc.ListVisible(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, visible)

	_, err = svc.LinkUser(ctx, &requests.CreateUserNotificationReq{UserID: "u1", NotificationID: n.ID})
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, pub.targets[n.ID])

	visible, err = svc.ListVisible(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, visible, 1)

	visible, err = svc.ListVisible(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, visible)

	require.ErrorIs(t, svc.MarkRead(ctx, "u2", n.ID), errs.ErrNotFound)
	require.NoError(t, svc.MarkRead(ctx, "u1", n.ID))

	links, err := svc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].ReadAt)
}

func TestNotificationService_SendLinksRecipients(t *testing.T) {
	gdb, _ := setupTestDB(t)
	seedUser(t, gdb, "u1", constants.RoleMember)
	seedUser(t, gdb, "u2", constants.RoleLeader)
	pub := newRecordingPublisher()
	svc := NewNotificationService(repositories.NewNotificationRepository(gdb), pub, nil, nil)
	ctx := context.Background()

	n := &models.Notification{Title: "Lembrete", Message: "Amanhã", Type: constants.NotificationReminder}
	require.NoError(t, svc.Send(ctx, n, []string{"u1", "u2"}))
	require.ElementsMatch(t, []string{"u1", "u2"}, pub.targets[n.ID])

	for _, uid := range []string{"u1", "u2"} {
		visible, err := svc.ListVisible(ctx, uid)
		require.NoError(t, err)
		require.Len(t, visible, 1)
	}
}
