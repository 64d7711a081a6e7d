package repository

import (
	"context"

	"vyoma/domain"
)

// staticCatalogRepository serves the built-in seed catalog when no SQL
// backend is configured.
type staticCatalogRepository struct{}

func NewStaticCatalogRepository() domain.CatalogRepository {
	return staticCatalogRepository{}
}

func (staticCatalogRepository) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	return defaultOpportunities(), nil
}

func (staticCatalogRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return defaultCompanies(), nil
}

func (staticCatalogRepository) ListPlacements(ctx context.Context) ([]domain.Placement, error) {
	return defaultPlacements(), nil
}
