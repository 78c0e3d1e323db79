package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FamilyRepository ---
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) SaveFamily(ctx context.Context, family *domain.Family) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

func (m *MockFamilyRepository) FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Family), args.Error(1)
}

func (m *MockFamilyRepository) ListFamilies(ctx context.Context) ([]*domain.Family, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Family), args.Error(1)
}

// --- Test Suite ---
type HouseholdServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFamilyRepository
	service  portssvc.HouseholdSvcFacade
	ctx      context.Context
}

func (suite *HouseholdServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFamilyRepository)
	suite.service = services.NewHouseholdService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *HouseholdServiceTestSuite) adults() (*domain.Person, *domain.Person) {
	return domain.NewPerson("Ted", "Neward", 45), domain.NewPerson("Charlotte", "Neward", 45)
}

// --- Test Cases ---

func (suite *HouseholdServiceTestSuite) TestRegisterFamily_Success() {
	ted, charlotte := suite.adults()
	suite.mockRepo.On("SaveFamily", suite.ctx, mock.MatchedBy(func(f *domain.Family) bool {
		m := f.Members()
		return len(m) == 2 && m[0] == ted && m[1] == charlotte
	})).Return(nil).Once()

	family, err := suite.service.RegisterFamily(suite.ctx, ted, charlotte)

	suite.Require().NoError(err)
	suite.Require().NotNil(family)
	suite.Same(charlotte, ted.Spouse())
	suite.Same(ted, charlotte.Spouse())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HouseholdServiceTestSuite) TestRegisterFamily_NilSpouse() {
	ted, _ := suite.adults()

	family, err := suite.service.RegisterFamily(suite.ctx, ted, nil)

	suite.Nil(family)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFamily", mock.Anything, mock.Anything)
}

func (suite *HouseholdServiceTestSuite) TestRegisterFamily_RepositoryError() {
	ted, charlotte := suite.adults()
	suite.mockRepo.On("SaveFamily", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	family, err := suite.service.RegisterFamily(suite.ctx, ted, charlotte)

	suite.Nil(family)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *HouseholdServiceTestSuite) TestGetFamily_NotFound() {
	suite.mockRepo.On("FindFamilyByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	family, err := suite.service.GetFamily(suite.ctx, "missing")

	suite.Nil(family)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *HouseholdServiceTestSuite) TestListFamilies() {
	suite.mockRepo.On("ListFamilies", suite.ctx).Return(nil, nil).Once()

	families, err := suite.service.ListFamilies(suite.ctx)
	suite.Require().NoError(err)
	suite.NotNil(families)
	suite.Empty(families)

	suite.mockRepo.On("ListFamilies", suite.ctx).Return(nil, errors.New("boom")).Once()
	_, err = suite.service.ListFamilies(suite.ctx)
	suite.Error(err)
}

func (suite *HouseholdServiceTestSuite) TestAddChild_Accepted() {
	family := domain.NewFamily(suite.adults())
	child := domain.NewPerson("Kid", "Neward", 1)
	suite.mockRepo.On("FindFamilyByID", suite.ctx, family.ID()).Return(family, nil).Once()

	ok, err := suite.service.AddChild(suite.ctx, family.ID(), child)

	suite.Require().NoError(err)
	suite.True(ok)
	suite.Require().Len(family.Members(), 3)
	suite.Same(child, family.Members()[2])
}

func (suite *HouseholdServiceTestSuite) TestAddChild_ParentsTooYoung() {
	family := domain.NewFamily(domain.NewPerson("A", "Young", 20), domain.NewPerson("B", "Young", 30))
	suite.mockRepo.On("FindFamilyByID", suite.ctx, family.ID()).Return(family, nil).Once()

	ok, err := suite.service.AddChild(suite.ctx, family.ID(), domain.NewPerson("Kid", "Young", 0))

	suite.Require().NoError(err)
	suite.False(ok)
	suite.Len(family.Members(), 2)
}

func (suite *HouseholdServiceTestSuite) TestAddChild_NilChild() {
	ok, err := suite.service.AddChild(suite.ctx, "any", nil)

	suite.False(ok)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *HouseholdServiceTestSuite) TestAssignJob() {
	ted, charlotte := suite.adults()
	family := domain.NewFamily(ted, charlotte)
	teen := domain.NewPerson("Teen", "Neward", 15)
	suite.Require().True(family.HaveChild(teen))
	suite.mockRepo.On("FindFamilyByID", suite.ctx, family.ID()).Return(family, nil)

	job := domain.NewJob("Consultant", domain.Hourly{Rate: 10})
	ok, err := suite.service.AssignJob(suite.ctx, family.ID(), charlotte.ID(), job)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Same(job, charlotte.Job())

	ok, err = suite.service.AssignJob(suite.ctx, family.ID(), teen.ID(), domain.NewJob("Paperboy", domain.Hourly{Rate: 2}))
	suite.Require().NoError(err)
	suite.False(ok)
	suite.Nil(teen.Job())

	ok, err = suite.service.AssignJob(suite.ctx, family.ID(), teen.ID(), nil)
	suite.Require().NoError(err)
	suite.False(ok, "clearing a job is still gated by age")
	suite.Nil(teen.Job())

	ok, err = suite.service.AssignJob(suite.ctx, family.ID(), charlotte.ID(), nil)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Nil(charlotte.Job())

	_, err = suite.service.AssignJob(suite.ctx, family.ID(), "stranger", job)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *HouseholdServiceTestSuite) TestHouseholdIncome_DefaultsToUSD() {
	ted, charlotte := suite.adults()
	family := domain.NewFamily(ted, charlotte)
	charlotte.SetJob(domain.NewJob("Consultant", domain.Hourly{Rate: 10.0}))
	suite.mockRepo.On("FindFamilyByID", suite.ctx, family.ID()).Return(family, nil).Once()

	income, err := suite.service.HouseholdIncome(suite.ctx, family.ID())

	suite.Require().NoError(err)
	suite.Equal(domain.NewMoney(20000, domain.USD), income)
}

func (suite *HouseholdServiceTestSuite) TestHouseholdIncome_ReportingCurrency() {
	service := services.NewHouseholdService(suite.mockRepo, services.WithReportingCurrency(domain.GBP))
	ted, charlotte := suite.adults()
	family := domain.NewFamily(ted, charlotte)
	ted.SetJob(domain.NewJob("Guest Lecturer", domain.Salary{Amount: 1000}))
	charlotte.SetJob(domain.NewJob("Consultant", domain.Hourly{Rate: 10.0}))
	suite.mockRepo.On("FindFamilyByID", suite.ctx, family.ID()).Return(family, nil).Once()

	income, err := service.HouseholdIncome(suite.ctx, family.ID())

	suite.Require().NoError(err)
	suite.Equal(domain.NewMoney(10500, domain.GBP), income)
}

func (suite *HouseholdServiceTestSuite) TestHouseholdIncome_UnknownFamily() {
	suite.mockRepo.On("FindFamilyByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.HouseholdIncome(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---
func TestHouseholdServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HouseholdServiceTestSuite))
}
