package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
)

// HouseholdReaderSvc defines read operations for households
type HouseholdReaderSvc interface {
	GetFamily(ctx context.Context, familyID string) (*domain.Family, error)
	ListFamilies(ctx context.Context) ([]*domain.Family, error)

	// HouseholdIncome reports the family's annual income in the reporting currency.
	HouseholdIncome(ctx context.Context, familyID string) (domain.Money, error)
}

// HouseholdWriterSvc defines operations that change households
type HouseholdWriterSvc interface {
	RegisterFamily(ctx context.Context, spouse1, spouse2 *domain.Person) (*domain.Family, error)

	// AddChild reports false when the parents are too young; that is not an error.
	AddChild(ctx context.Context, familyID string, child *domain.Person) (bool, error)

	// AssignJob reports false when the member is too young to hold a job.
	AssignJob(ctx context.Context, familyID, memberID string, job *domain.Job) (bool, error)
}

// HouseholdSvcFacade combines all household-related service interfaces
type HouseholdSvcFacade interface {
	HouseholdReaderSvc
	HouseholdWriterSvc
}
