package services

import (
	"context"
	"strings"

	"outpass-backend/internal/apperrors"
	"outpass-backend/internal/models"
)

// StudentDirectory is the read side of the student registry. Lookups are
// exact case-sensitive matches on the identity triple.
type StudentDirectory interface {
	FindByIdentity(ctx context.Context, name, hostelNumber, roomNumber string) (*models.Student, error)
}

// StudentStore is the full registry contract used by the admin surface.
type StudentStore interface {
	StudentDirectory
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]models.Student, error)
}

type StudentService struct {
	repo StudentStore
}

func NewStudentService(repo StudentStore) *StudentService {
	return &StudentService{repo: repo}
}

// Register creates a directory entry after checking every field is present.
// Re-registering the same student surfaces the store's duplicate error.
func (s *StudentService) Register(ctx context.Context, req *models.RegisterStudentRequest) (*models.Student, error) {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Branch) == "" {
		missing = append(missing, "branch")
	}
	if req.StartingYear == 0 {
		missing = append(missing, "starting_year")
	}
	if strings.TrimSpace(req.HostelNumber) == "" {
		missing = append(missing, "hostel_number")
	}
	if strings.TrimSpace(req.RoomNumber) == "" {
		missing = append(missing, "room_number")
	}
	if strings.TrimSpace(req.GuardianEmail) == "" {
		missing = append(missing, "guardian_email")
	}
	if len(missing) > 0 {
		return nil, apperrors.Required(missing...)
	}

	student := &models.Student{
		Name:          req.Name,
		Branch:        req.Branch,
		StartingYear:  req.StartingYear,
		HostelNumber:  req.HostelNumber,
		RoomNumber:    req.RoomNumber,
		GuardianEmail: req.GuardianEmail,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// FindGuardianContact resolves the registered guardian for an identity
// triple. Returns apperrors.ErrNotFound when no entry matches.
func (s *StudentService) FindGuardianContact(ctx context.Context, name, hostelNumber, roomNumber string) (*models.Student, error) {
	return s.repo.FindByIdentity(ctx, name, hostelNumber, roomNumber)
}

// List returns every registered student for the admin details page.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.List(ctx)
}
