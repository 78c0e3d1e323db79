package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
)

// FamilyRepository keeps families in process memory. It is not safe for concurrent use.
type FamilyRepository struct {
	byID  map[string]*domain.Family
	order []string
}

// NewFamilyRepository creates an empty family registry.
func NewFamilyRepository() *FamilyRepository {
	return &FamilyRepository{byID: make(map[string]*domain.Family)}
}

var _ portsrepo.FamilyRepositoryFacade = (*FamilyRepository)(nil)

// SaveFamily registers a family under its ID.
func (r *FamilyRepository) SaveFamily(ctx context.Context, family *domain.Family) error {
	if family == nil {
		return fmt.Errorf("%w: family is nil", apperrors.ErrValidation)
	}
	if _, exists := r.byID[family.ID()]; exists {
		return fmt.Errorf("%w: family %s", apperrors.ErrDuplicate, family.ID())
	}
	r.byID[family.ID()] = family
	r.order = append(r.order, family.ID())
	return nil
}

// FindFamilyByID retrieves a family by ID.
func (r *FamilyRepository) FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	family, ok := r.byID[familyID]
	if !ok {
		return nil, fmt.Errorf("%w: family %s", apperrors.ErrNotFound, familyID)
	}
	return family, nil
}

// ListFamilies returns families in the order they were saved.
func (r *FamilyRepository) ListFamilies(ctx context.Context) ([]*domain.Family, error) {
	families := make([]*domain.Family, 0, len(r.order))
	for _, id := range r.order {
		families = append(families, r.byID[id])
	}
	return families, nil
}
