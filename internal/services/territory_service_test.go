package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/models/dtos/requests"
)

func newTerritoryService(t *testing.T) *TerritoryService {
	gdb, _ := setupTestDB(t)
	return NewTerritoryService(
		repositories.NewTerritoryRepository(gdb),
		repositories.NewBlockRepository(gdb),
		nil,
	)
}

func TestTerritoryService_BlockWritesUpdateRollups(t *testing.T) {
	svc := newTerritoryService(t)
	ctx := context.Background()

	territory, err := svc.Create(ctx, &requests.CreateTerritoryReq{Name: "Centro"})
	require.NoError(t, err)

	first, err := svc.CreateBlock(ctx, &requests.CreateBlockReq{Number: "1", TerritoryID: territory.ID})
	require.NoError(t, err)
	require.Equal(t, constants.BlockPending, first.Status)

	_, err = svc.CreateBlock(ctx, &requests.CreateBlockReq{Number: "2", TerritoryID: territory.ID})
	require.NoError(t, err)

	completed := constants.BlockCompleted
	_, err = svc.UpdateBlock(ctx, first.ID, &requests.UpdateBlockReq{Status: &completed})
	require.NoError(t, err)

	got, err := svc.Get(ctx, territory.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.TotalBlocks)
	require.Equal(t, 1, got.CompletedBlocks)
	require.Equal(t, 50, got.CompletionRate)

	blocks, err := svc.ListBlocks(ctx, territory.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	require.Equal(t, "1", blocks[0].Number)
}

func TestTerritoryService_DeleteHidesFromList(t *testing.T) {
	svc := newTerritoryService(t)
	ctx := context.Background()

	territory, err := svc.Create(ctx, &requests.CreateTerritoryReq{Name: "Norte"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, territory.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	got, err := svc.Get(ctx, territory.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, svc.Delete(ctx, "missing"), errs.ErrNotFound)
}

func TestTerritoryService_DuplicateName(t *testing.T) {
	svc := newTerritoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &requests.CreateTerritoryReq{Name: "Sul"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &requests.CreateTerritoryReq{Name: "Sul"})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestTerritoryService_UpdateIgnoresClientRollups(t *testing.T) {
	svc := newTerritoryService(t)
	ctx := context.Background()

	var create requests.CreateTerritoryReq
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Sul","totalBlocks":5,"completedBlocks":5,"completionRate":100}`), &create))
	territory, err := svc.Create(ctx, &create)
	require.NoError(t, err)

	_, err = svc.CreateBlock(ctx, &requests.CreateBlockReq{Number: "1", TerritoryID: territory.ID})
	require.NoError(t, err)

	var update requests.UpdateTerritoryReq
	require.NoError(t, json.Unmarshal([]byte(`{"description":"zona sul","totalBlocks":7,"completedBlocks":3,"completionRate":90}`), &update))
	_, err = svc.Update(ctx, territory.ID, &update)
	require.NoError(t, err)

	got, err := svc.Get(ctx, territory.ID)
	require.NoError(t, err)
	require.Equal(t, "zona sul", *got.Description)
	require.Equal(t, 1, got.TotalBlocks)
	require.Equal(t, 0, got.CompletedBlocks)
	require.Equal(t, 0, got.CompletionRate)
}
