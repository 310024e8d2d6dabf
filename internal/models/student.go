package models

import "time"

// Student is a pre-registered hostel resident. Records are created once by
// an admin and only ever read back for guardian lookups; there is no update
// or delete path.
type Student struct {
	ID            int       `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Branch        string    `json:"branch" db:"branch"`
	StartingYear  int       `json:"starting_year" db:"starting_year"`
	HostelNumber  string    `json:"hostel_number" db:"hostel_number"`
	RoomNumber    string    `json:"room_number" db:"room_number"`
	GuardianEmail string    `json:"guardian_email" db:"guardian_email"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type RegisterStudentRequest struct {
	Name          string `json:"name"`
	Branch        string `json:"branch"`
	StartingYear  int    `json:"starting_year"`
	HostelNumber  string `json:"hostel_number"`
	RoomNumber    string `json:"room_number"`
	GuardianEmail string `json:"guardian_email"`
}
