package services

import (
	"context"

	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/metrics"
	"field-ministry/campo/internal/models/dtos/requests"
	models "field-ministry/campo/internal/models/gorm"
)

type TerritoryService struct {
	territories *repositories.TerritoryRepository
	blocks      *repositories.BlockRepository
	metrics     *metrics.MetricsRegistry
}

func NewTerritoryService(
	territories *repositories.TerritoryRepository,
	blocks *repositories.BlockRepository,
	metricsReg *metrics.MetricsRegistry,
) *TerritoryService {
	return &TerritoryService{territories: territories, blocks: blocks, metrics: metricsReg}
}

func (s *TerritoryService) List(ctx context.Context) ([]models.Territory, error) {
	return s.territories.List(ctx)
}

func (s *TerritoryService) Get(ctx context.Context, id string) (*models.Territory, error) {
	return s.territories.Get(ctx, id)
}

func (s *TerritoryService) Create(ctx context.Context, req *requests.CreateTerritoryReq) (*models.Territory, error) {
	territory := req.ToModel()
	if err := s.territories.Create(ctx, territory); err != nil {
		return nil, err
	}
	s.metrics.Created("territory")
	logging.Info("Territory created", "territory_id", territory.ID, "name", territory.Name)
	return territory, nil
}

func (s *TerritoryService) Update(ctx context.Context, id string, req *requests.UpdateTerritoryReq) (*models.Territory, error) {
	return s.territories.Update(ctx, id, req.Updates())
}

func (s *TerritoryService) Delete(ctx context.Context, id string) error {
	if err := s.territories.SoftDelete(ctx, id); err != nil {
		return err
	}
	logging.Info("Territory deactivated", "territory_id", id)
	return nil
}

func (s *TerritoryService) ListBlocks(ctx context.Context, territoryID string) ([]models.Block, error) {
	return s.blocks.ListByTerritory(ctx, territoryID)
}

func (s *TerritoryService) CreateBlock(ctx context.Context, req *requests.CreateBlockReq) (*models.Block, error) {
	block := req.ToModel()
	if err := s.blocks.Create(ctx, block); err != nil {
		return nil, err
	}
	s.metrics.Created("block")
	return block, nil
}

func (s *TerritoryService) UpdateBlock(ctx context.Context, id string, req *requests.UpdateBlockReq) (*models.Block, error) {
	return s.blocks.Update(ctx, id, req.Updates())
}

func (s *TerritoryService) DeleteBlock(ctx context.Context, id string) error {
	return s.blocks.Delete(ctx, id)
}
