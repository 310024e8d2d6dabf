package services

import (
	"context"
	"fmt"
	"time"

	"outpass-backend/internal/mailer"
	"outpass-backend/internal/metrics"
	"outpass-backend/internal/models"
	"outpass-backend/internal/timeutil"
)

// NotificationLogRepo records every dispatch attempt.
type NotificationLogRepo interface {
	Create(ctx context.Context, nl *models.NotificationLog) error
}

// NotificationService builds guardian emails for the two outpass variants
// and sends them through the configured mail provider. Callers own the
// decision of whether a failure matters; the intake workflow never lets one
// fail a submission.
type NotificationService struct {
	mailer  mailer.Mailer
	logRepo NotificationLogRepo
}

func NewNotificationService(m mailer.Mailer) *NotificationService {
	return &NotificationService{mailer: m}
}

// SetLogRepository enables persistent logging of dispatch attempts.
func (s *NotificationService) SetLogRepository(repo NotificationLogRepo) {
	s.logRepo = repo
}

// NotifyHomeVisit emails the guardian about an approved home visit.
func (s *NotificationService) NotifyHomeVisit(ctx context.Context, guardianEmail string, hv *models.HomeVisit) error {
	departure := timeutil.FormatIST(hv.DepartureDate, timeutil.DateLayout)
	ret := timeutil.FormatIST(hv.ReturnDate, timeutil.DateLayout)

	msg := mailer.Message{
		To:      guardianEmail,
		Subject: "Your Child's Home Visit Notification",
		Text: fmt.Sprintf(
			"Dear Parent,\n\nYour child %s from hostel %s, room %s is going home.\nDetails:\n- Departure: %s\n- Return: %s\n\nRegards,\nHostel Management",
			hv.StudentName, hv.HostelNumber, hv.RoomNumber, departure, ret,
		),
		HTML: homeVisitHTML(hv, departure, ret),
	}

	return s.dispatch(models.KindHomeVisit, hv.ID, msg)
}

// NotifyOuting emails the guardian about an approved outing.
func (s *NotificationService) NotifyOuting(ctx context.Context, guardianEmail string, o *models.Outing) error {
	departure := timeutil.FormatIST(o.DepartureTime, timeutil.DisplayLayout)

	msg := mailer.Message{
		To:      guardianEmail,
		Subject: "Your Child's Outing Notification",
		Text: fmt.Sprintf(
			"Dear Parent,\n\nYour child %s from hostel %s, room %s is going on an outing.\nDetails:\n- Going Time: %s\n\nRegards,\nHostel Management",
			o.StudentName, o.HostelNumber, o.RoomNumber, departure,
		),
		HTML: outingHTML(o, departure),
	}

	return s.dispatch(models.KindOuting, o.ID, msg)
}

func (s *NotificationService) dispatch(kind models.OutpassKind, outpassID int, msg mailer.Message) error {
	nl := &models.NotificationLog{
		OutpassKind: kind,
		OutpassID:   outpassID,
		Recipient:   msg.To,
		Subject:     msg.Subject,
		Status:      models.NotificationStatusSent,
	}

	if err := s.mailer.Send(msg); err != nil {
		nl.Status = models.NotificationStatusFailed
		nl.ErrorMessage = err.Error()
		s.logAttempt(nl)
		metrics.NotificationsFailed.Inc()
		return err
	}

	s.logAttempt(nl)
	metrics.NotificationsSent.Inc()
	return nil
}

// logAttempt writes the log row in the background so a slow store never
// delays or fails the dispatch path.
func (s *NotificationService) logAttempt(nl *models.NotificationLog) {
	if s.logRepo == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logRepo.Create(ctx, nl)
	}()
}
