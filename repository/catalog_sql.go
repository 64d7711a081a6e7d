package repository

import (
	"context"

	"gorm.io/gorm"

	"vyoma/domain"
)

type CatalogSQLRepository struct {
	db *gorm.DB
}

func NewSQLCatalogRepository(db *gorm.DB) *CatalogSQLRepository {
	return &CatalogSQLRepository{db: db}
}

// Seed inserts the default catalog on a fresh database.
func (r *CatalogSQLRepository) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Opportunity{}).Count(&count).Error; err != nil {
		return translateDBError(err)
	}
	if count > 0 {
		return nil
	}

	opportunities := defaultOpportunities()
	if err := r.db.WithContext(ctx).Create(&opportunities).Error; err != nil {
		return translateDBError(err)
	}
	companies := defaultCompanies()
	if err := r.db.WithContext(ctx).Create(&companies).Error; err != nil {
		return translateDBError(err)
	}
	placements := defaultPlacements()
	return translateDBError(r.db.WithContext(ctx).Create(&placements).Error)
}

func (r *CatalogSQLRepository) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	var out []domain.Opportunity
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, translateDBError(err)
	}
	return out, nil
}

func (r *CatalogSQLRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var out []domain.Company
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, translateDBError(err)
	}
	return out, nil
}

func (r *CatalogSQLRepository) ListPlacements(ctx context.Context) ([]domain.Placement, error) {
	var out []domain.Placement
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, translateDBError(err)
	}
	return out, nil
}
