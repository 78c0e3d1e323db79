package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/utils"
)

// incomeCurrency is the currency job pay is denominated in.
const incomeCurrency = domain.USD

// householdService implements the HouseholdSvcFacade interface
type householdService struct {
	BaseService
	familyRepo        portsrepo.FamilyRepositoryFacade
	reportingCurrency domain.CurrencyCode
}

// HouseholdOption is a functional option for configuring the household service
type HouseholdOption func(*householdService)

// WithReportingCurrency sets the currency household income is reported in.
// Unsupported codes are ignored.
func WithReportingCurrency(code domain.CurrencyCode) HouseholdOption {
	return func(s *householdService) {
		if domain.IsSupportedCurrency(code) {
			s.reportingCurrency = code
		}
	}
}

// NewHouseholdService creates a new household service with the provided options
func NewHouseholdService(repo portsrepo.FamilyRepositoryFacade, options ...HouseholdOption) portssvc.HouseholdSvcFacade {
	svc := &householdService{
		familyRepo:        repo,
		reportingCurrency: incomeCurrency,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure householdService implements the HouseholdSvcFacade interface
var _ portssvc.HouseholdSvcFacade = (*householdService)(nil)

func (s *householdService) RegisterFamily(ctx context.Context, spouse1, spouse2 *domain.Person) (*domain.Family, error) {
	if spouse1 == nil || spouse2 == nil {
		return nil, fmt.Errorf("%w: a family needs two spouses", apperrors.ErrValidation)
	}

	family := domain.NewFamily(spouse1, spouse2)
	if err := s.familyRepo.SaveFamily(ctx, family); err != nil {
		s.LogError(ctx, err, "Failed to save family", slog.String("family_id", family.ID()))
		return nil, fmt.Errorf("failed to register family: %w", err)
	}

	s.LogInfo(ctx, "Family registered",
		slog.String("family_id", family.ID()),
		slog.Bool("spouses_linked", spouse1.Spouse() == spouse2 && spouse2.Spouse() == spouse1))
	return family, nil
}

func (s *householdService) GetFamily(ctx context.Context, familyID string) (*domain.Family, error) {
	family, err := s.familyRepo.FindFamilyByID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family %s: %w", familyID, err)
	}
	return family, nil
}

func (s *householdService) ListFamilies(ctx context.Context) ([]*domain.Family, error) {
	families, err := s.familyRepo.ListFamilies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list families")
		return nil, fmt.Errorf("failed to list families: %w", err)
	}
	if families == nil {
		return []*domain.Family{}, nil
	}
	return families, nil
}

func (s *householdService) AddChild(ctx context.Context, familyID string, child *domain.Person) (bool, error) {
	if child == nil {
		return false, fmt.Errorf("%w: child is nil", apperrors.ErrValidation)
	}

	family, err := s.GetFamily(ctx, familyID)
	if err != nil {
		return false, err
	}

	if !family.HaveChild(child) {
		s.LogInfo(ctx, "Child rejected, parents too young",
			slog.String("family_id", familyID),
			slog.Int("parent_age_must_exceed", domain.MinimumParentAge))
		return false, nil
	}

	s.LogDebug(ctx, "Child added",
		slog.String("family_id", familyID),
		slog.String("member_id", child.ID()),
		slog.Int("members", len(family.Members())))
	return true, nil
}

func (s *householdService) AssignJob(ctx context.Context, familyID, memberID string, job *domain.Job) (bool, error) {
	family, err := s.GetFamily(ctx, familyID)
	if err != nil {
		return false, err
	}

	member, ok := family.Member(memberID)
	if !ok {
		return false, fmt.Errorf("%w: member %s in family %s", apperrors.ErrNotFound, memberID, familyID)
	}

	if member.Age() < domain.MinimumAssociationAge {
		s.LogInfo(ctx, "Job assignment ignored, member too young",
			slog.String("family_id", familyID),
			slog.String("member_id", memberID),
			slog.Int("age", member.Age()))
		return false, nil
	}

	member.SetJob(job)
	s.LogDebug(ctx, "Job assigned",
		slog.String("family_id", familyID),
		slog.String("member_id", memberID))
	return true, nil
}

func (s *householdService) HouseholdIncome(ctx context.Context, familyID string) (domain.Money, error) {
	family, err := s.GetFamily(ctx, familyID)
	if err != nil {
		return domain.Money{}, err
	}

	income := domain.NewMoney(int64(family.HouseholdIncome()), incomeCurrency).Convert(s.reportingCurrency)

	s.LogDebug(ctx, "Household income calculated",
		slog.String("family_id", familyID),
		slog.String("income", utils.FormatMoney(income)))
	return income, nil
}
