package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outpass-backend/internal/apperrors"
	"outpass-backend/internal/models"
)

// MockStudentStore is a mock implementation of StudentStore
type MockStudentStore struct {
	mock.Mock
}

func (m *MockStudentStore) FindByIdentity(ctx context.Context, name, hostelNumber, roomNumber string) (*models.Student, error) {
	args := m.Called(ctx, name, hostelNumber, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentStore) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	if args.Error(0) == nil {
		student.ID = 1
	}
	return args.Error(0)
}

func (m *MockStudentStore) List(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func registerRequest() *models.RegisterStudentRequest {
	return &models.RegisterStudentRequest{
		Name:          "Rahul Sharma",
		Branch:        "CSE",
		StartingYear:  2024,
		HostelNumber:  "H-4",
		RoomNumber:    "212",
		GuardianEmail: "parent@example.com",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := new(MockStudentStore)
	svc := NewStudentService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Student")).Return(nil)

	student, err := svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	require.NotNil(t, student)
	assert.Equal(t, "Rahul Sharma", student.Name)
	assert.Equal(t, "parent@example.com", student.GuardianEmail)
	repo.AssertExpectations(t)
}

func TestRegister_MissingFields_ListsEveryOne(t *testing.T) {
	repo := new(MockStudentStore)
	svc := NewStudentService(repo)

	req := registerRequest()
	req.Branch = ""
	req.StartingYear = 0
	req.GuardianEmail = "  "

	student, err := svc.Register(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, student)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"branch", "starting_year", "guardian_email"}, fields)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Duplicate_SurfacesConflict(t *testing.T) {
	repo := new(MockStudentStore)
	svc := NewStudentService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Student")).
		Return(apperrors.ErrDuplicate)

	student, err := svc.Register(context.Background(), registerRequest())

	assert.Nil(t, student)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestFindGuardianContact_NotFound(t *testing.T) {
	repo := new(MockStudentStore)
	svc := NewStudentService(repo)

	repo.On("FindByIdentity", mock.Anything, "Unknown", "H-1", "101").
		Return(nil, apperrors.ErrNotFound)

	student, err := svc.FindGuardianContact(context.Background(), "Unknown", "H-1", "101")

	assert.Nil(t, student)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindGuardianContact_ExactMatch(t *testing.T) {
	repo := new(MockStudentStore)
	svc := NewStudentService(repo)

	repo.On("FindByIdentity", mock.Anything, "Rahul Sharma", "H-4", "212").
		Return(&models.Student{Name: "Rahul Sharma", GuardianEmail: "parent@example.com"}, nil)

	student, err := svc.FindGuardianContact(context.Background(), "Rahul Sharma", "H-4", "212")

	require.NoError(t, err)
	assert.Equal(t, "parent@example.com", student.GuardianEmail)
}
