package models

import "time"

// OutpassKind tags the two request variants. They share the same base shape
// and lifecycle; only the date fields differ.
type OutpassKind string

const (
	KindHomeVisit OutpassKind = "home_visit"
	KindOuting    OutpassKind = "outing"
)

// Outpass holds the fields common to both variants. A record is created with
// Entered=false and flipped to true exactly once when the student is
// confirmed back on premises. There is no transition back.
type Outpass struct {
	ID           int       `json:"id" db:"id"`
	StudentName  string    `json:"student_name" db:"student_name"`
	HostelNumber string    `json:"hostel_number" db:"hostel_number"`
	RoomNumber   string    `json:"room_number" db:"room_number"`
	Entered      bool      `json:"entered" db:"entered"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// HomeVisit is an outpass for a multi-day visit home.
type HomeVisit struct {
	Outpass
	DepartureDate time.Time `json:"departure_date" db:"departure_date"`
	ReturnDate    time.Time `json:"return_date" db:"return_date"`
}

// Outing is a same-day outpass; only the departure time is recorded.
type Outing struct {
	Outpass
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
}

type SubmitHomeVisitRequest struct {
	StudentName   string    `json:"student_name"`
	HostelNumber  string    `json:"hostel_number"`
	RoomNumber    string    `json:"room_number"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
}

type SubmitOutingRequest struct {
	StudentName   string    `json:"student_name"`
	HostelNumber  string    `json:"hostel_number"`
	RoomNumber    string    `json:"room_number"`
	DepartureTime time.Time `json:"departure_time"`
}
