package models

import "time"

// Appointment statuses. Cancelled appointments never participate in
// conflict or availability checks.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment represents a booked service for a client.
type Appointment struct {
	ID              string      `bson:"id" json:"id"`                               // Unique appointment identifier (UUID)
	TenantID        string      `bson:"tenantId" json:"tenantId"`                   // Owning business account
	ClientID        string      `bson:"clientId,omitempty" json:"clientId"`         // Client receiving the service
	ServiceID       string      `bson:"serviceId,omitempty" json:"serviceId"`       // Service from the tenant's catalogue
	Resource        ResourceRef `bson:"resource" json:"resource"`                   // Staff member handling the appointment
	Date            string      `bson:"date" json:"date"`                           // Calendar date in "YYYY-MM-DD" format
	Time            string      `bson:"time" json:"time"`                           // Start time-of-day in 24-hour "HH:MM" format
	DurationMinutes int         `bson:"durationMinutes" json:"durationMinutes"`     // Service length in minutes
	Status          string      `bson:"status" json:"status"`                       // scheduled | confirmed | completed | cancelled
	Notes           string      `bson:"notes,omitempty" json:"notes,omitempty"`     // Free-text staff notes
	CreatedAt       time.Time   `bson:"createdAt,omitempty" json:"createdAt"`       // Timestamp when the appointment was created
	UpdatedAt       time.Time   `bson:"updatedAt,omitempty" json:"updatedAt"`       // Timestamp of the last modification
}
