package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/errs"
	models "field-ministry/campo/internal/models/gorm"
)

func strPtr(s string) *string { return &s }

func TestUserRepository_UpsertKeepsRoleAndName(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, &models.User{
		ID:        "sub-1",
		Email:     strPtr("ana@example.com"),
		FirstName: strPtr("Ana"),
		Name:      "Ana",
		Role:      constants.RoleMember,
		IsActive:  true,
	})
	require.NoError(t, err)
	require.Equal(t, constants.RoleMember, created.Role)

	_, err = repo.Update(ctx, created.ID, map[string]interface{}{"role": constants.RoleCoordinator, "name": "Ana C."})
	require.NoError(t, err)

	again, err := repo.Upsert(ctx, &models.User{
		ID:        "sub-1",
		Email:     strPtr("ana@new.example.com"),
		FirstName: strPtr("Ana"),
		Name:      "Ana",
		Role:      constants.RoleMember,
		IsActive:  true,
	})
	require.NoError(t, err)
	require.Equal(t, "ana@new.example.com", *again.Email)
	require.Equal(t, constants.RoleCoordinator, again.Role)
	require.Equal(t, "Ana C.", again.Name)
}

func TestUserRepository_DeactivateAndList(t *testing.T) {
	gdb, _ := setupTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	seedUser(t, gdb, "b", constants.RoleMember)
	seedUser(t, gdb, "a", constants.RoleAdmin)

	require.NoError(t, repo.Deactivate(ctx, "b"))
	require.ErrorIs(t, repo.Deactivate(ctx, "missing"), errs.ErrNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "a", users[0].ID)
	require.False(t, users[1].IsActive)
}
