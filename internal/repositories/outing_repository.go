package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outpass-backend/internal/apperrors"
	"outpass-backend/internal/models"
)

type OutingRepository struct {
	DB *pgxpool.Pool
}

func NewOutingRepository(db *pgxpool.Pool) *OutingRepository {
	return &OutingRepository{DB: db}
}

// Create inserts a new outing record; entered always starts false.
func (r *OutingRepository) Create(ctx context.Context, o *models.Outing) error {
	query := `
		INSERT INTO outings (student_name, hostel_number, room_number, departure_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, entered, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		o.StudentName, o.HostelNumber, o.RoomNumber, o.DepartureTime,
	).Scan(&o.ID, &o.Entered, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create outing: %w", err)
	}
	return nil
}

// Get retrieves an outing record by id.
func (r *OutingRepository) Get(ctx context.Context, id int) (*models.Outing, error) {
	query := `
		SELECT id, student_name, hostel_number, room_number, departure_time, entered, created_at
		FROM outings
		WHERE id = $1
	`

	o := &models.Outing{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.StudentName, &o.HostelNumber, &o.RoomNumber,
		&o.DepartureTime, &o.Entered, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get outing: %w", err)
	}
	return o, nil
}

// List returns all outing records in insertion order.
func (r *OutingRepository) List(ctx context.Context) ([]models.Outing, error) {
	query := `
		SELECT id, student_name, hostel_number, room_number, departure_time, entered, created_at
		FROM outings
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list outings: %w", err)
	}
	defer rows.Close()

	var outings []models.Outing
	for rows.Next() {
		var o models.Outing
		if err := rows.Scan(
			&o.ID, &o.StudentName, &o.HostelNumber, &o.RoomNumber,
			&o.DepartureTime, &o.Entered, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		outings = append(outings, o)
	}
	return outings, rows.Err()
}

// MarkEntered sets entered=true and returns the updated record. Idempotent
// for the same reason as the home-visit variant.
func (r *OutingRepository) MarkEntered(ctx context.Context, id int) (*models.Outing, error) {
	query := `
		UPDATE outings SET entered = TRUE
		WHERE id = $1
		RETURNING id, student_name, hostel_number, room_number, departure_time, entered, created_at
	`

	o := &models.Outing{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.StudentName, &o.HostelNumber, &o.RoomNumber,
		&o.DepartureTime, &o.Entered, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark outing entered: %w", err)
	}
	return o, nil
}
