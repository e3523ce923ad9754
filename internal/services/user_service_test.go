package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/models/dtos/requests"
)

func strPtr(s string) *string { return &s }

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name        string
		first, last *string
		email       *string
		want        string
	}{
		{"full name", strPtr("Ana"), strPtr("Souza"), strPtr("ana@example.com"), "Ana Souza"},
		{"first only falls back to email", strPtr("Ana"), nil, strPtr("ana@example.com"), "ana@example.com"},
		{"nothing", nil, nil, nil, "Usuário"},
		{"blank parts", strPtr(" "), strPtr("Souza"), strPtr(""), "Usuário"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DisplayName(tc.first, tc.last, tc.email))
		})
	}
}

func TestUserService_UpsertKeepsRoleAndName(t *testing.T) {
	gdb, _ := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(gdb))
	ctx := context.Background()

	user, err := svc.Upsert(ctx, &requests.UpsertUserReq{
		ID:        "sub-1",
		Email:     strPtr("ana@example.com"),
		FirstName: strPtr("Ana"),
		LastName:  strPtr("Souza"),
	})
	require.NoError(t, err)
	require.Equal(t, "Ana Souza", user.Name)
	require.Equal(t, constants.RoleMember, user.Role)
	require.True(t, user.IsActive)

	role := constants.RoleCoordinator
	name := "Irmã Ana"
	_, err = svc.Update(ctx, "sub-1", &requests.UpdateUserReq{Role: &role, Name: &name})
	require.NoError(t, err)

	again, err := svc.Upsert(ctx, &requests.UpsertUserReq{
		ID:    "sub-1",
		Email: strPtr("ana.souza@example.com"),
	})
	require.NoError(t, err)
	require.Equal(t, constants.RoleCoordinator, again.Role)
	require.Equal(t, "Irmã Ana", again.Name)
	require.Equal(t, "ana.souza@example.com", *again.Email)
}

func TestUserService_Deactivate(t *testing.T) {
	gdb, _ := setupTestDB(t)
	seedUser(t, gdb, "u1", constants.RoleMember)
	svc := NewUserService(repositories.NewUserRepository(gdb))
	ctx := context.Background()

	require.NoError(t, svc.Deactivate(ctx, "u1"))
	user, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.False(t, user.IsActive)

	require.ErrorIs(t, svc.Deactivate(ctx, "missing"), errs.ErrNotFound)
}
