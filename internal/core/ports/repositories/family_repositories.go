package repositories

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
)

// FamilyReader defines read operations for families
type FamilyReader interface {
	// FindFamilyByID retrieves a family by its ID.
	FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error)

	// ListFamilies retrieves all families in registration order.
	ListFamilies(ctx context.Context) ([]*domain.Family, error)
}

// FamilyWriter defines write operations for families
type FamilyWriter interface {
	// SaveFamily registers a new family.
	SaveFamily(ctx context.Context, family *domain.Family) error
}

// FamilyRepositoryFacade combines all family-related repository interfaces
type FamilyRepositoryFacade interface {
	FamilyReader
	FamilyWriter
}
