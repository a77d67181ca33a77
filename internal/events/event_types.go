package events

import (
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated         EventType = "booking_created"
	EventBookingStatusChanged   EventType = "booking_status_changed"
	EventJobAssigned            EventType = "job_assigned"
	EventJobStatusChanged       EventType = "job_status_changed"
	EventInvoiceIssued          EventType = "invoice_issued"
	EventPaymentRecorded        EventType = "payment_recorded"
	EventInventoryBelowMinimum  EventType = "inventory_below_minimum"
	EventFeedbackSubmitted      EventType = "feedback_submitted"
)

// Actor identifies the user that triggered an event.
type Actor struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID  int64              `json:"booking_id"`
	CustomerID int64              `json:"customer_id"`
	Type       domain.BookingType `json:"type"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	BookingID int64                `json:"booking_id"`
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}

// JobAssignedPayload payload.
type JobAssignedPayload struct {
	JobID        int64 `json:"job_id"`
	BookingID    int64 `json:"booking_id"`
	TechnicianID int64 `json:"technician_id"`
}

// JobStatusChangedPayload payload.
type JobStatusChangedPayload struct {
	JobID     int64            `json:"job_id"`
	OldStatus domain.JobStatus `json:"old_status"`
	NewStatus domain.JobStatus `json:"new_status"`
}

// InvoiceIssuedPayload payload.
type InvoiceIssuedPayload struct {
	InvoiceID     int64  `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	BookingID     int64  `json:"booking_id"`
	Total         string `json:"total"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID int64                `json:"payment_id"`
	InvoiceID int64                `json:"invoice_id"`
	Method    domain.PaymentMethod `json:"method"`
	Amount    string               `json:"amount"`
}

// FeedbackSubmittedPayload payload.
type FeedbackSubmittedPayload struct {
	FeedbackID int64 `json:"feedback_id"`
	BookingID  int64 `json:"booking_id"`
	Rating     int   `json:"rating"`
}

// InventoryBelowMinimumPayload payload.
type InventoryBelowMinimumPayload struct {
	ItemID int64  `json:"item_id"`
	SKU    string `json:"sku"`
	OnHand int    `json:"on_hand"`
	MinQty int    `json:"min_qty"`
}
