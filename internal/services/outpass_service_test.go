package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outpass-backend/internal/apperrors"
	"outpass-backend/internal/models"
)

// MockHomeVisitStore is a mock implementation of HomeVisitStore
type MockHomeVisitStore struct {
	mock.Mock
}

func (m *MockHomeVisitStore) Create(ctx context.Context, hv *models.HomeVisit) error {
	args := m.Called(ctx, hv)
	if args.Error(0) == nil {
		hv.ID = 1
	}
	return args.Error(0)
}

func (m *MockHomeVisitStore) Get(ctx context.Context, id int) (*models.HomeVisit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomeVisit), args.Error(1)
}

func (m *MockHomeVisitStore) List(ctx context.Context) ([]models.HomeVisit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HomeVisit), args.Error(1)
}

func (m *MockHomeVisitStore) MarkEntered(ctx context.Context, id int) (*models.HomeVisit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomeVisit), args.Error(1)
}

func (m *MockHomeVisitStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOutingStore is a mock implementation of OutingStore
type MockOutingStore struct {
	mock.Mock
}

func (m *MockOutingStore) Create(ctx context.Context, o *models.Outing) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		o.ID = 1
	}
	return args.Error(0)
}

func (m *MockOutingStore) Get(ctx context.Context, id int) (*models.Outing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Outing), args.Error(1)
}

func (m *MockOutingStore) List(ctx context.Context) ([]models.Outing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Outing), args.Error(1)
}

func (m *MockOutingStore) MarkEntered(ctx context.Context, id int) (*models.Outing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Outing), args.Error(1)
}

// MockDirectory is a mock implementation of StudentDirectory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) FindByIdentity(ctx context.Context, name, hostelNumber, roomNumber string) (*models.Student, error) {
	args := m.Called(ctx, name, hostelNumber, roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyHomeVisit(ctx context.Context, guardianEmail string, hv *models.HomeVisit) error {
	args := m.Called(ctx, guardianEmail, hv)
	return args.Error(0)
}

func (m *MockNotifier) NotifyOuting(ctx context.Context, guardianEmail string, o *models.Outing) error {
	args := m.Called(ctx, guardianEmail, o)
	return args.Error(0)
}

func setupOutpassService() (*OutpassService, *MockHomeVisitStore, *MockOutingStore, *MockDirectory, *MockNotifier) {
	homeVisits := new(MockHomeVisitStore)
	outings := new(MockOutingStore)
	directory := new(MockDirectory)
	notifier := new(MockNotifier)
	svc := NewOutpassService(homeVisits, outings, directory, notifier)
	return svc, homeVisits, outings, directory, notifier
}

func homeVisitRequest() *models.SubmitHomeVisitRequest {
	return &models.SubmitHomeVisitRequest{
		StudentName:   "Rahul Sharma",
		HostelNumber:  "H-4",
		RoomNumber:    "212",
		DepartureDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		ReturnDate:    time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	}
}

func outingRequest() *models.SubmitOutingRequest {
	return &models.SubmitOutingRequest{
		StudentName:   "Rahul Sharma",
		HostelNumber:  "H-4",
		RoomNumber:    "212",
		DepartureTime: time.Date(2026, 9, 4, 17, 30, 0, 0, time.UTC),
	}
}

func TestSubmitHomeVisit_Success_NotifiesGuardianOnce(t *testing.T) {
	svc, homeVisits, _, directory, notifier := setupOutpassService()

	homeVisits.On("Create", mock.Anything, mock.AnythingOfType("*models.HomeVisit")).Return(nil)
	directory.On("FindByIdentity", mock.Anything, "Rahul Sharma", "H-4", "212").
		Return(&models.Student{Name: "Rahul Sharma", GuardianEmail: "parent@example.com"}, nil)
	notifier.On("NotifyHomeVisit", mock.Anything, "parent@example.com", mock.AnythingOfType("*models.HomeVisit")).Return(nil)

	hv, err := svc.SubmitHomeVisit(context.Background(), homeVisitRequest())

	require.NoError(t, err)
	require.NotNil(t, hv)
	assert.False(t, hv.Entered, "a fresh request starts not entered")
	assert.Equal(t, "Rahul Sharma", hv.StudentName)
	notifier.AssertNumberOfCalls(t, "NotifyHomeVisit", 1)
}

func TestSubmitHomeVisit_MissingFields_NothingPersisted(t *testing.T) {
	svc, homeVisits, _, _, notifier := setupOutpassService()

	req := homeVisitRequest()
	req.RoomNumber = ""
	req.ReturnDate = time.Time{}

	hv, err := svc.SubmitHomeVisit(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, hv)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"room_number", "return_date"}, fields)

	homeVisits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyHomeVisit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitHomeVisit_NoMatchingStudent_SkipsNotification(t *testing.T) {
	svc, homeVisits, _, directory, notifier := setupOutpassService()

	homeVisits.On("Create", mock.Anything, mock.AnythingOfType("*models.HomeVisit")).Return(nil)
	directory.On("FindByIdentity", mock.Anything, "Rahul Sharma", "H-4", "212").
		Return(nil, apperrors.ErrNotFound)

	hv, err := svc.SubmitHomeVisit(context.Background(), homeVisitRequest())

	require.NoError(t, err, "an unregistered student still gets a saved request")
	require.NotNil(t, hv)
	notifier.AssertNotCalled(t, "NotifyHomeVisit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitHomeVisit_DirectoryFailure_SubmissionStillSucceeds(t *testing.T) {
	svc, homeVisits, _, directory, notifier := setupOutpassService()

	homeVisits.On("Create", mock.Anything, mock.AnythingOfType("*models.HomeVisit")).Return(nil)
	directory.On("FindByIdentity", mock.Anything, "Rahul Sharma", "H-4", "212").
		Return(nil, errors.New("connection reset"))

	hv, err := svc.SubmitHomeVisit(context.Background(), homeVisitRequest())

	require.NoError(t, err)
	require.NotNil(t, hv)
	notifier.AssertNotCalled(t, "NotifyHomeVisit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitHomeVisit_NotifierFailure_SubmissionStillSucceeds(t *testing.T) {
	svc, homeVisits, _, directory, notifier := setupOutpassService()

	homeVisits.On("Create", mock.Anything, mock.AnythingOfType("*models.HomeVisit")).Return(nil)
	directory.On("FindByIdentity", mock.Anything, "Rahul Sharma", "H-4", "212").
		Return(&models.Student{GuardianEmail: "parent@example.com"}, nil)
	notifier.On("NotifyHomeVisit", mock.Anything, "parent@example.com", mock.AnythingOfType("*models.HomeVisit")).
		Return(errors.New("smtp unreachable"))

	hv, err := svc.SubmitHomeVisit(context.Background(), homeVisitRequest())

	require.NoError(t, err)
	require.NotNil(t, hv)
}

func TestSubmitHomeVisit_StoreFailure_Propagates(t *testing.T) {
	svc, homeVisits, _, directory, notifier := setupOutpassService()

	homeVisits.On("Create", mock.Anything, mock.AnythingOfType("*models.HomeVisit")).
		Return(errors.New("insert failed"))

	hv, err := svc.SubmitHomeVisit(context.Background(), homeVisitRequest())

	require.Error(t, err)
	assert.Nil(t, hv)
	directory.AssertNotCalled(t, "FindByIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyHomeVisit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitOuting_Success_NotifiesGuardian(t *testing.T) {
	svc, _, outings, directory, notifier := setupOutpassService()

	outings.On("Create", mock.Anything, mock.AnythingOfType("*models.Outing")).Return(nil)
	directory.On("FindByIdentity", mock.Anything, "Rahul Sharma", "H-4", "212").
		Return(&models.Student{GuardianEmail: "parent@example.com"}, nil)
	notifier.On("NotifyOuting", mock.Anything, "parent@example.com", mock.AnythingOfType("*models.Outing")).Return(nil)

	o, err := svc.SubmitOuting(context.Background(), outingRequest())

	require.NoError(t, err)
	require.NotNil(t, o)
	assert.False(t, o.Entered)
	notifier.AssertNumberOfCalls(t, "NotifyOuting", 1)
}

func TestSubmitOuting_MissingDepartureTime_Rejected(t *testing.T) {
	svc, _, outings, _, _ := setupOutpassService()

	req := outingRequest()
	req.DepartureTime = time.Time{}

	o, err := svc.SubmitOuting(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, o)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	outings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMarkHomeVisitEntered_ReturnsUpdatedRecord(t *testing.T) {
	svc, homeVisits, _, _, _ := setupOutpassService()

	updated := &models.HomeVisit{
		Outpass: models.Outpass{ID: 7, StudentName: "Rahul Sharma", Entered: true},
	}
	homeVisits.On("MarkEntered", mock.Anything, 7).Return(updated, nil)

	hv, err := svc.MarkHomeVisitEntered(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, hv.Entered)
	assert.Equal(t, 7, hv.ID)
}

func TestMarkHomeVisitEntered_AlreadyEntered_Idempotent(t *testing.T) {
	svc, homeVisits, _, _, _ := setupOutpassService()

	// The store reports the same final state no matter how often it runs.
	updated := &models.HomeVisit{Outpass: models.Outpass{ID: 7, Entered: true}}
	homeVisits.On("MarkEntered", mock.Anything, 7).Return(updated, nil)

	first, err := svc.MarkHomeVisitEntered(context.Background(), 7)
	require.NoError(t, err)
	second, err := svc.MarkHomeVisitEntered(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, first.Entered, second.Entered)
}

func TestMarkOutingEntered_UnknownID_NotFound(t *testing.T) {
	svc, _, outings, _, _ := setupOutpassService()

	outings.On("MarkEntered", mock.Anything, 99).Return(nil, apperrors.ErrNotFound)

	o, err := svc.MarkOutingEntered(context.Background(), 99)

	assert.Nil(t, o)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteHomeVisit_UnknownID_NotFound(t *testing.T) {
	svc, homeVisits, _, _, _ := setupOutpassService()

	homeVisits.On("Delete", mock.Anything, 42).Return(apperrors.ErrNotFound)

	err := svc.DeleteHomeVisit(context.Background(), 42)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteHomeVisit_Success(t *testing.T) {
	svc, homeVisits, _, _, _ := setupOutpassService()

	homeVisits.On("Delete", mock.Anything, 3).Return(nil)

	err := svc.DeleteHomeVisit(context.Background(), 3)

	require.NoError(t, err)
	homeVisits.AssertExpectations(t)
}

// The directory enforces no uniqueness on (name, hostel, room). When two
// registrations share the triple, the lookup resolves the oldest one and
// the notification goes to that guardian only.
func TestSubmitHomeVisit_DuplicateDirectoryEntries_OldestRegistrationWins(t *testing.T) {
	svc, homeVisits, _, directory, notifier := setupOutpassService()

	oldest := &models.Student{ID: 1, Name: "Rahul Sharma", GuardianEmail: "first@example.com"}

	homeVisits.On("Create", mock.Anything, mock.AnythingOfType("*models.HomeVisit")).Return(nil)
	directory.On("FindByIdentity", mock.Anything, "Rahul Sharma", "H-4", "212").Return(oldest, nil)
	notifier.On("NotifyHomeVisit", mock.Anything, "first@example.com", mock.AnythingOfType("*models.HomeVisit")).Return(nil)

	_, err := svc.SubmitHomeVisit(context.Background(), homeVisitRequest())

	require.NoError(t, err)
	notifier.AssertNumberOfCalls(t, "NotifyHomeVisit", 1)
	notifier.AssertNotCalled(t, "NotifyHomeVisit", mock.Anything, "second@example.com", mock.Anything)
}

func TestListHomeVisits_PassesThrough(t *testing.T) {
	svc, homeVisits, _, _, _ := setupOutpassService()

	records := []models.HomeVisit{
		{Outpass: models.Outpass{ID: 1, StudentName: "A"}},
		{Outpass: models.Outpass{ID: 2, StudentName: "B"}},
	}
	homeVisits.On("List", mock.Anything).Return(records, nil)

	got, err := svc.ListHomeVisits(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}
