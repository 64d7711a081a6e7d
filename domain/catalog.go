// domain/catalog.go
package domain

import "context"

// Opportunity is an internship or job listing shown on the portal.
type Opportunity struct {
	ID          int      `gorm:"primaryKey" json:"id"`
	JobTitle    string   `gorm:"not null" json:"jobTitle"`
	CompanyName string   `gorm:"not null" json:"companyName"`
	CompanyLogo string   `json:"companyLogo"`
	Tags        []string `gorm:"serializer:json" json:"tags"`
	Description string   `json:"description,omitempty"`
}

// Company is a recruiting partner shown on the companies page.
type Company struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Logo        string `json:"logo"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	IsHiring    bool   `json:"isHiring"`
	AlumniCount int    `json:"alumniCount"`
	Location    string `json:"location"`
}

// Placement is a past placement success highlighted on the portal.
type Placement struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	StudentName  string `gorm:"not null" json:"studentName"`
	StudentPhoto string `json:"studentPhoto"`
	Company      string `gorm:"not null" json:"company"`
	Role         string `json:"role"`
}

type CatalogRepository interface {
	ListOpportunities(ctx context.Context) ([]Opportunity, error)
	ListCompanies(ctx context.Context) ([]Company, error)
	ListPlacements(ctx context.Context) ([]Placement, error)
}

type CatalogUseCase interface {
	ListOpportunities(ctx context.Context) ([]Opportunity, error)
	ListCompanies(ctx context.Context) ([]Company, error)
	ListPlacements(ctx context.Context) ([]Placement, error)
}
