package appointmentRepo

import (
	"context"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
)

// AppointmentRepository defines the data access methods used by the scheduling
// engine and the appointment write path.
type AppointmentRepository interface {
	// FetchForDay retrieves every appointment for a tenant, resource and date,
	// regardless of status. Filtering out cancelled records and the excluded
	// appointment id is the caller's job.
	FetchForDay(ctx context.Context, tenantID string, resource models.ResourceRef, date string) ([]models.Appointment, error)
	// GetByID retrieves a single appointment scoped to the tenant.
	GetByID(ctx context.Context, tenantID, id string) (*models.Appointment, error)
	// Create persists a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error
	// Cancel marks an appointment cancelled, removing it from conflict checks.
	Cancel(ctx context.Context, tenantID, id string) error
}
