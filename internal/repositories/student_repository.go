package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"outpass-backend/internal/apperrors"
	"outpass-backend/internal/models"
)

type StudentRepository struct {
	DB *pgxpool.Pool
}

func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{DB: db}
}

// Create inserts a new directory entry. A unique-index violation surfaces
// as apperrors.ErrDuplicate so the handler can answer with a conflict.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, branch, starting_year, hostel_number, room_number, guardian_email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.DB.QueryRow(ctx, query,
		student.Name, student.Branch, student.StartingYear,
		student.HostelNumber, student.RoomNumber, student.GuardianEmail,
	).Scan(&student.ID, &student.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// FindByIdentity resolves a directory entry by exact (name, hostel, room)
// match. The triple carries no uniqueness guarantee; when duplicates exist
// the oldest registration wins.
func (r *StudentRepository) FindByIdentity(ctx context.Context, name, hostelNumber, roomNumber string) (*models.Student, error) {
	query := `
		SELECT id, name, branch, starting_year, hostel_number, room_number, guardian_email, created_at
		FROM students
		WHERE name = $1 AND hostel_number = $2 AND room_number = $3
		ORDER BY id
		LIMIT 1
	`

	student := &models.Student{}
	err := r.DB.QueryRow(ctx, query, name, hostelNumber, roomNumber).Scan(
		&student.ID, &student.Name, &student.Branch, &student.StartingYear,
		&student.HostelNumber, &student.RoomNumber, &student.GuardianEmail,
		&student.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return student, nil
}

// List returns every directory entry in registration order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name, branch, starting_year, hostel_number, room_number, guardian_email, created_at
		FROM students
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Branch, &s.StartingYear,
			&s.HostelNumber, &s.RoomNumber, &s.GuardianEmail, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
