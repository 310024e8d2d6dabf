package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"outpass-backend/internal/models"
)

type NotificationLogRepository struct {
	DB *pgxpool.Pool
}

func NewNotificationLogRepository(db *pgxpool.Pool) *NotificationLogRepository {
	return &NotificationLogRepository{DB: db}
}

func (r *NotificationLogRepository) Create(ctx context.Context, nl *models.NotificationLog) error {
	query := `
		INSERT INTO notification_logs (outpass_kind, outpass_id, recipient, subject, status, error_message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		nl.OutpassKind, nl.OutpassID, nl.Recipient, nl.Subject, nl.Status, nl.ErrorMessage,
	).Scan(&nl.ID, &nl.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification log: %w", err)
	}
	return nil
}

// List returns notification attempts, newest first.
func (r *NotificationLogRepository) List(ctx context.Context, limit int) ([]models.NotificationLog, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, outpass_kind, outpass_id, recipient, subject, status, COALESCE(error_message, ''), created_at
		FROM notification_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification logs: %w", err)
	}
	defer rows.Close()

	var logs []models.NotificationLog
	for rows.Next() {
		var nl models.NotificationLog
		if err := rows.Scan(
			&nl.ID, &nl.OutpassKind, &nl.OutpassID, &nl.Recipient,
			&nl.Subject, &nl.Status, &nl.ErrorMessage, &nl.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, nl)
	}
	return logs, rows.Err()
}
