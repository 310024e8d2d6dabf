package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"outpass-backend/internal/apperrors"
	"outpass-backend/internal/metrics"
	"outpass-backend/internal/models"
)

// HomeVisitStore is the record store for the home-visit variant.
type HomeVisitStore interface {
	Create(ctx context.Context, hv *models.HomeVisit) error
	Get(ctx context.Context, id int) (*models.HomeVisit, error)
	List(ctx context.Context) ([]models.HomeVisit, error)
	MarkEntered(ctx context.Context, id int) (*models.HomeVisit, error)
	Delete(ctx context.Context, id int) error
}

// OutingStore is the record store for the outing variant. It deliberately
// has no delete operation.
type OutingStore interface {
	Create(ctx context.Context, o *models.Outing) error
	Get(ctx context.Context, id int) (*models.Outing, error)
	List(ctx context.Context) ([]models.Outing, error)
	MarkEntered(ctx context.Context, id int) (*models.Outing, error)
}

// Notifier dispatches guardian emails for newly created records.
type Notifier interface {
	NotifyHomeVisit(ctx context.Context, guardianEmail string, hv *models.HomeVisit) error
	NotifyOuting(ctx context.Context, guardianEmail string, o *models.Outing) error
}

// ActivityPublisher receives live outpass events for the ops dashboard.
type ActivityPublisher interface {
	PublishActivity(kind models.OutpassKind, action string, id int, studentName string)
}

// OutpassService implements the request lifecycle: intake (validate,
// persist, resolve guardian, notify best-effort), entry marking, listing
// and the home-visit-only deletion.
type OutpassService struct {
	homeVisits HomeVisitStore
	outings    OutingStore
	directory  StudentDirectory
	notifier   Notifier
	activity   ActivityPublisher
}

func NewOutpassService(homeVisits HomeVisitStore, outings OutingStore, directory StudentDirectory, notifier Notifier) *OutpassService {
	return &OutpassService{
		homeVisits: homeVisits,
		outings:    outings,
		directory:  directory,
		notifier:   notifier,
	}
}

// SetActivityPublisher wires the live dashboard feed.
func (s *OutpassService) SetActivityPublisher(p ActivityPublisher) {
	s.activity = p
}

// SubmitHomeVisit validates and persists a home-visit request, then sends
// the guardian notification when the student is registered. Notification
// problems are logged and swallowed: the record is already saved and stays
// saved.
func (s *OutpassService) SubmitHomeVisit(ctx context.Context, req *models.SubmitHomeVisitRequest) (*models.HomeVisit, error) {
	var missing []string
	if strings.TrimSpace(req.StudentName) == "" {
		missing = append(missing, "student_name")
	}
	if strings.TrimSpace(req.HostelNumber) == "" {
		missing = append(missing, "hostel_number")
	}
	if strings.TrimSpace(req.RoomNumber) == "" {
		missing = append(missing, "room_number")
	}
	if req.DepartureDate.IsZero() {
		missing = append(missing, "departure_date")
	}
	if req.ReturnDate.IsZero() {
		missing = append(missing, "return_date")
	}
	if len(missing) > 0 {
		return nil, apperrors.Required(missing...)
	}

	hv := &models.HomeVisit{
		Outpass: models.Outpass{
			StudentName:  req.StudentName,
			HostelNumber: req.HostelNumber,
			RoomNumber:   req.RoomNumber,
		},
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
	}
	if err := s.homeVisits.Create(ctx, hv); err != nil {
		return nil, err
	}

	metrics.OutpassesSubmitted.WithLabelValues(string(models.KindHomeVisit)).Inc()
	s.publish(models.KindHomeVisit, "submitted", hv.ID, hv.StudentName)

	s.notifyGuardian(ctx, models.KindHomeVisit, hv.StudentName, hv.HostelNumber, hv.RoomNumber, func(guardianEmail string) error {
		return s.notifier.NotifyHomeVisit(ctx, guardianEmail, hv)
	})

	return hv, nil
}

// SubmitOuting is the outing-variant intake; same workflow, one date field.
func (s *OutpassService) SubmitOuting(ctx context.Context, req *models.SubmitOutingRequest) (*models.Outing, error) {
	var missing []string
	if strings.TrimSpace(req.StudentName) == "" {
		missing = append(missing, "student_name")
	}
	if strings.TrimSpace(req.HostelNumber) == "" {
		missing = append(missing, "hostel_number")
	}
	if strings.TrimSpace(req.RoomNumber) == "" {
		missing = append(missing, "room_number")
	}
	if req.DepartureTime.IsZero() {
		missing = append(missing, "departure_time")
	}
	if len(missing) > 0 {
		return nil, apperrors.Required(missing...)
	}

	o := &models.Outing{
		Outpass: models.Outpass{
			StudentName:  req.StudentName,
			HostelNumber: req.HostelNumber,
			RoomNumber:   req.RoomNumber,
		},
		DepartureTime: req.DepartureTime,
	}
	if err := s.outings.Create(ctx, o); err != nil {
		return nil, err
	}

	metrics.OutpassesSubmitted.WithLabelValues(string(models.KindOuting)).Inc()
	s.publish(models.KindOuting, "submitted", o.ID, o.StudentName)

	s.notifyGuardian(ctx, models.KindOuting, o.StudentName, o.HostelNumber, o.RoomNumber, func(guardianEmail string) error {
		return s.notifier.NotifyOuting(ctx, guardianEmail, o)
	})

	return o, nil
}

// notifyGuardian resolves the directory entry and sends the email. The
// record is already persisted, so nothing here may fail the submission: a
// missing directory entry skips silently, a lookup or dispatch failure is
// logged only.
func (s *OutpassService) notifyGuardian(ctx context.Context, kind models.OutpassKind, name, hostel, room string, send func(guardianEmail string) error) {
	student, err := s.directory.FindByIdentity(ctx, name, hostel, room)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[Outpass] no matching student for %s %q (hostel %s, room %s), skipping notification", kind, name, hostel, room)
		} else {
			log.Printf("[Outpass] directory lookup failed for %s %q: %v", kind, name, err)
		}
		metrics.NotificationsSkipped.Inc()
		return
	}

	if err := send(student.GuardianEmail); err != nil {
		log.Printf("[Outpass] notification to %s failed for %s %q: %v", student.GuardianEmail, kind, name, err)
	}
}

// GetHomeVisit loads one home-visit record.
func (s *OutpassService) GetHomeVisit(ctx context.Context, id int) (*models.HomeVisit, error) {
	return s.homeVisits.Get(ctx, id)
}

// GetOuting loads one outing record.
func (s *OutpassService) GetOuting(ctx context.Context, id int) (*models.Outing, error) {
	return s.outings.Get(ctx, id)
}

// ListHomeVisits returns all home-visit records in insertion order.
func (s *OutpassService) ListHomeVisits(ctx context.Context) ([]models.HomeVisit, error) {
	return s.homeVisits.List(ctx)
}

// ListOutings returns all outing records in insertion order.
func (s *OutpassService) ListOutings(ctx context.Context) ([]models.Outing, error) {
	return s.outings.List(ctx)
}

// MarkHomeVisitEntered flips the entered flag and returns the updated
// record. Marking an already-entered record succeeds with the same state.
func (s *OutpassService) MarkHomeVisitEntered(ctx context.Context, id int) (*models.HomeVisit, error) {
	hv, err := s.homeVisits.MarkEntered(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.EntriesMarked.WithLabelValues(string(models.KindHomeVisit)).Inc()
	s.publish(models.KindHomeVisit, "entered", hv.ID, hv.StudentName)
	return hv, nil
}

// MarkOutingEntered is the outing-variant entry marking.
func (s *OutpassService) MarkOutingEntered(ctx context.Context, id int) (*models.Outing, error) {
	o, err := s.outings.MarkEntered(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.EntriesMarked.WithLabelValues(string(models.KindOuting)).Inc()
	s.publish(models.KindOuting, "entered", o.ID, o.StudentName)
	return o, nil
}

// DeleteHomeVisit removes a home-visit record. There is intentionally no
// outing counterpart.
func (s *OutpassService) DeleteHomeVisit(ctx context.Context, id int) error {
	if err := s.homeVisits.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(models.KindHomeVisit, "deleted", id, "")
	return nil
}

func (s *OutpassService) publish(kind models.OutpassKind, action string, id int, studentName string) {
	if s.activity == nil {
		return
	}
	s.activity.PublishActivity(kind, action, id, studentName)
}
