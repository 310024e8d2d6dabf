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

type HomeVisitRepository struct {
	DB *pgxpool.Pool
}

func NewHomeVisitRepository(db *pgxpool.Pool) *HomeVisitRepository {
	return &HomeVisitRepository{DB: db}
}

// Create inserts a new home-visit record; entered always starts false.
func (r *HomeVisitRepository) Create(ctx context.Context, hv *models.HomeVisit) error {
	query := `
		INSERT INTO home_visits (student_name, hostel_number, room_number, departure_date, return_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, entered, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		hv.StudentName, hv.HostelNumber, hv.RoomNumber,
		hv.DepartureDate, hv.ReturnDate,
	).Scan(&hv.ID, &hv.Entered, &hv.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create home visit: %w", err)
	}
	return nil
}

// Get retrieves a home-visit record by id.
func (r *HomeVisitRepository) Get(ctx context.Context, id int) (*models.HomeVisit, error) {
	query := `
		SELECT id, student_name, hostel_number, room_number, departure_date, return_date, entered, created_at
		FROM home_visits
		WHERE id = $1
	`

	hv := &models.HomeVisit{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&hv.ID, &hv.StudentName, &hv.HostelNumber, &hv.RoomNumber,
		&hv.DepartureDate, &hv.ReturnDate, &hv.Entered, &hv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get home visit: %w", err)
	}
	return hv, nil
}

// List returns all home-visit records in insertion order.
func (r *HomeVisitRepository) List(ctx context.Context) ([]models.HomeVisit, error) {
	query := `
		SELECT id, student_name, hostel_number, room_number, departure_date, return_date, entered, created_at
		FROM home_visits
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list home visits: %w", err)
	}
	defer rows.Close()

	var visits []models.HomeVisit
	for rows.Next() {
		var hv models.HomeVisit
		if err := rows.Scan(
			&hv.ID, &hv.StudentName, &hv.HostelNumber, &hv.RoomNumber,
			&hv.DepartureDate, &hv.ReturnDate, &hv.Entered, &hv.CreatedAt,
		); err != nil {
			return nil, err
		}
		visits = append(visits, hv)
	}
	return visits, rows.Err()
}

// MarkEntered sets entered=true and returns the updated record. The update
// is unconditional, so re-marking an already-entered record is a no-op.
func (r *HomeVisitRepository) MarkEntered(ctx context.Context, id int) (*models.HomeVisit, error) {
	query := `
		UPDATE home_visits SET entered = TRUE
		WHERE id = $1
		RETURNING id, student_name, hostel_number, room_number, departure_date, return_date, entered, created_at
	`

	hv := &models.HomeVisit{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&hv.ID, &hv.StudentName, &hv.HostelNumber, &hv.RoomNumber,
		&hv.DepartureDate, &hv.ReturnDate, &hv.Entered, &hv.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark home visit entered: %w", err)
	}
	return hv, nil
}

// Delete removes a home-visit record by id. Outings have no delete path.
func (r *HomeVisitRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM home_visits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete home visit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
