package models

import "time"

// NotificationLog records one guardian email attempt, successful or not.
type NotificationLog struct {
	ID           int         `json:"id"`
	OutpassKind  OutpassKind `json:"outpass_kind"`
	OutpassID    int         `json:"outpass_id"`
	Recipient    string      `json:"recipient"`
	Subject      string      `json:"subject"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Notification status types
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)
