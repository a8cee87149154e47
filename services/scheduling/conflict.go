package scheduling

import (
	"context"
	"fmt"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
)

// CheckConflict reports whether the candidate interval overlaps any
// non-cancelled appointment held by the same resource on the same date.
//
// Working-hours validity is deliberately not checked here: staff creating an
// appointment from the dashboard may book outside opening hours, and the
// availability enumerator enforces hours for the public booking page.
func (se *DefaultSchedulingEngine) CheckConflict(ctx context.Context, tenantID string, cand Candidate) (ConflictResult, error) {
	if cand.TenantID != "" && cand.TenantID != tenantID {
		return ConflictResult{}, &TenantMismatchError{Want: tenantID, Got: cand.TenantID}
	}

	candInterval, err := NewInterval(cand.Date, cand.Time, cand.DurationMinutes)
	if err != nil {
		return ConflictResult{}, err
	}

	// A candidate without a resource cannot collide with anyone.
	if cand.Resource.IsZero() {
		return ConflictResult{}, nil
	}

	appts, err := se.Appointments.FetchForDay(ctx, tenantID, cand.Resource, cand.Date)
	if err != nil {
		return ConflictResult{}, &RepositoryUnavailableError{Op: "fetch appointments", Err: err}
	}

	for _, appt := range appts {
		if appt.Status == models.AppointmentCancelled {
			continue
		}
		if cand.ExcludeID != "" && appt.ID == cand.ExcludeID {
			continue
		}
		if !appt.Resource.Equal(cand.Resource) {
			continue
		}
		existing, err := NewInterval(appt.Date, appt.Time, appt.DurationMinutes)
		if err != nil {
			// A stored appointment we cannot interpret must fail the check
			// rather than be silently ignored and risk a double booking.
			return ConflictResult{}, fmt.Errorf("stored appointment %s is malformed: %w", appt.ID, err)
		}
		if candInterval.Overlaps(existing) {
			return ConflictResult{HasConflict: true, ConflictingAppointmentID: appt.ID}, nil
		}
	}

	return ConflictResult{}, nil
}
