package scheduling

import (
	"context"
	"time"

	appointmentRepo "github.com/HMkaraman/beauty-center-dashboard-sub004/database/repository/appointment"
	staffRepo "github.com/HMkaraman/beauty-center-dashboard-sub004/database/repository/staff"
	hoursRepo "github.com/HMkaraman/beauty-center-dashboard-sub004/database/repository/workinghours"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
)

// Default granularity of the booking grid and length of the public booking
// window, used when the engine is constructed without explicit values.
const (
	DefaultGranularityMinutes = 15
	DefaultWindowDays         = 30
)

// Candidate is a proposed or probed appointment interval.
type Candidate struct {
	TenantID        string             `json:"tenantId"`
	Resource        models.ResourceRef `json:"resource"`
	Date            string             `json:"date"`
	Time            string             `json:"time"`
	DurationMinutes int                `json:"durationMinutes"`
	// ExcludeID lets an edit-in-place check skip the appointment being
	// modified so it does not conflict with itself.
	ExcludeID string `json:"excludeId,omitempty"`
}

// ConflictResult is the outcome of a conflict check. A conflict is a normal
// result, not an error.
type ConflictResult struct {
	HasConflict              bool   `json:"hasConflict"`
	ConflictingAppointmentID string `json:"conflictingAppointmentId,omitempty"`
}

// SchedulingEngine decides whether a proposed appointment collides with
// existing bookings and enumerates bookable dates and time slots. All methods
// are read-only and idempotent; the authoritative conflict re-check belongs
// to the write path, inside its own transaction.
type SchedulingEngine interface {
	// CheckConflict reports whether the candidate overlaps any non-cancelled
	// appointment for the same tenant, resource and date.
	CheckConflict(ctx context.Context, tenantID string, cand Candidate) (ConflictResult, error)
	// FindNextAvailableSlot returns the earliest open, non-conflicting start
	// time on the given date, or found=false when the day has none.
	FindNextAvailableSlot(ctx context.Context, tenantID string, resource models.ResourceRef, date string, durationMinutes int) (slot string, found bool, err error)
	// GetAvailableDates lists the dates in the rolling booking window with at
	// least one bookable slot of the given duration.
	GetAvailableDates(ctx context.Context, tenantID string, serviceDuration int, resource *models.ResourceRef) ([]string, error)
	// GetAvailableSlots lists the bookable start times on a date. With a nil
	// resource it is the "any available staff" view across the roster.
	GetAvailableSlots(ctx context.Context, tenantID, date string, serviceDuration int, resource *models.ResourceRef) ([]string, error)
}

// DefaultSchedulingEngine is the production implementation, a pure function
// of its injected repositories and clock.
type DefaultSchedulingEngine struct {
	Appointments appointmentRepo.AppointmentRepository
	Hours        hoursRepo.WorkingHoursRepository
	Staff        staffRepo.StaffRepository

	// GranularityMinutes is the booking grid step; zero means the default.
	GranularityMinutes int
	// WindowDays is the rolling booking horizon; zero means the default.
	WindowDays int
	// Now is the tenant-local clock, injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (se *DefaultSchedulingEngine) granularity() int {
	if se.GranularityMinutes > 0 {
		return se.GranularityMinutes
	}
	return DefaultGranularityMinutes
}

func (se *DefaultSchedulingEngine) windowDays() int {
	if se.WindowDays > 0 {
		return se.WindowDays
	}
	return DefaultWindowDays
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}
