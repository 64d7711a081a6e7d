package service

import (
	"context"

	"vyoma/domain"
)

type catalogService struct {
	catalog domain.CatalogRepository
}

func NewCatalogService(catalog domain.CatalogRepository) domain.CatalogUseCase {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	return s.catalog.ListOpportunities(ctx)
}

func (s *catalogService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.catalog.ListCompanies(ctx)
}

func (s *catalogService) ListPlacements(ctx context.Context) ([]domain.Placement, error) {
	return s.catalog.ListPlacements(ctx)
}
