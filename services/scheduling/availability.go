package scheduling

import (
	"context"
	"fmt"
	"sync"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
)

// GetAvailableSlots lists every bookable start time on a date, on the booking
// grid, within working hours, with the full service duration fitting before
// closing time. With a concrete resource a slot is free iff that resource has
// no overlapping appointment; with a nil resource a slot is free iff at least
// one active staff member is free at that time.
func (se *DefaultSchedulingEngine) GetAvailableSlots(ctx context.Context, tenantID, date string, serviceDuration int, resource *models.ResourceRef) ([]string, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if serviceDuration <= 0 {
		return nil, &InvalidIntervalError{Field: "duration", Reason: "must be a positive number of minutes"}
	}

	if !se.inBookingWindow(date) {
		return []string{}, nil
	}

	window, err := se.openWindow(ctx, tenantID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if window == nil {
		return []string{}, nil
	}

	resources, err := se.resolveResources(ctx, tenantID, resource)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return []string{}, nil
	}

	busy, err := se.busyByResource(ctx, tenantID, date, resources)
	if err != nil {
		return nil, err
	}

	notBefore := se.earliestStart(date, window.open)
	slots := []string{}
	for t := window.open; t+serviceDuration <= window.close; t += se.granularity() {
		if t < notBefore {
			continue
		}
		candidate := Interval{Date: date, Start: t, Duration: serviceDuration}
		for _, ref := range resources {
			if !overlapsAny(candidate, busy[ref.String()]) {
				slots = append(slots, FormatClock(t))
				break
			}
		}
	}
	return slots, nil
}

// GetAvailableDates lists, in ascending order, every date in the rolling
// booking window on which at least one slot of the given duration is
// bookable. An empty list is a normal result.
func (se *DefaultSchedulingEngine) GetAvailableDates(ctx context.Context, tenantID string, serviceDuration int, resource *models.ResourceRef) ([]string, error) {
	if serviceDuration <= 0 {
		return nil, &InvalidIntervalError{Field: "duration", Reason: "must be a positive number of minutes"}
	}

	resources, err := se.resolveResources(ctx, tenantID, resource)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return []string{}, nil
	}

	// Working hours repeat weekly, so resolve each weekday at most once.
	windows := map[int]*openWindow{}
	resolved := map[int]bool{}

	today := se.now()
	dates := []string{}
	for offset := 0; offset < se.windowDays(); offset++ {
		day := today.AddDate(0, 0, offset)
		weekday := int(day.Weekday())
		if !resolved[weekday] {
			window, err := se.openWindow(ctx, tenantID, weekday)
			if err != nil {
				return nil, err
			}
			windows[weekday] = window
			resolved[weekday] = true
		}
		window := windows[weekday]
		if window == nil || window.close-window.open < serviceDuration {
			continue
		}
		date := day.Format("2006-01-02")
		ok, err := se.hasBookableSlot(ctx, tenantID, date, serviceDuration, resources, window)
		if err != nil {
			return nil, err
		}
		if ok {
			dates = append(dates, date)
		}
	}
	return dates, nil
}

// hasBookableSlot reports whether any resource still has a free grid slot of
// the given duration on the date, short-circuiting on the first hit.
func (se *DefaultSchedulingEngine) hasBookableSlot(ctx context.Context, tenantID, date string, serviceDuration int, resources []models.ResourceRef, window *openWindow) (bool, error) {
	notBefore := se.earliestStart(date, window.open)
	for _, ref := range resources {
		busy, err := se.busyIntervals(ctx, tenantID, ref, date)
		if err != nil {
			return false, err
		}
		for t := window.open; t+serviceDuration <= window.close; t += se.granularity() {
			if t < notBefore {
				continue
			}
			candidate := Interval{Date: date, Start: t, Duration: serviceDuration}
			if !overlapsAny(candidate, busy) {
				return true, nil
			}
		}
	}
	return false, nil
}

// resolveResources narrows the query to the requested resource, or to the
// tenant's full active roster for "any available staff" queries.
func (se *DefaultSchedulingEngine) resolveResources(ctx context.Context, tenantID string, resource *models.ResourceRef) ([]models.ResourceRef, error) {
	if resource != nil && !resource.IsZero() {
		return []models.ResourceRef{*resource}, nil
	}
	roster, err := se.Staff.FetchBookableResources(ctx, tenantID)
	if err != nil {
		return nil, &RepositoryUnavailableError{Op: "fetch staff roster", Err: err}
	}
	return roster, nil
}

// busyIntervals loads a resource's non-cancelled appointments for one day as
// intervals.
func (se *DefaultSchedulingEngine) busyIntervals(ctx context.Context, tenantID string, resource models.ResourceRef, date string) ([]Interval, error) {
	appts, err := se.Appointments.FetchForDay(ctx, tenantID, resource, date)
	if err != nil {
		return nil, &RepositoryUnavailableError{Op: "fetch appointments", Err: err}
	}
	var busy []Interval
	for _, appt := range appts {
		if appt.Status == models.AppointmentCancelled {
			continue
		}
		iv, err := NewInterval(appt.Date, appt.Time, appt.DurationMinutes)
		if err != nil {
			// Same fail-closed rule as the conflict check: a row we cannot
			// interpret must not silently widen availability.
			return nil, fmt.Errorf("stored appointment %s is malformed: %w", appt.ID, err)
		}
		busy = append(busy, iv)
	}
	return busy, nil
}

// busyByResource loads every resource's day concurrently; the reads are
// independent of each other.
func (se *DefaultSchedulingEngine) busyByResource(ctx context.Context, tenantID, date string, resources []models.ResourceRef) (map[string][]Interval, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	busy := make(map[string][]Interval, len(resources))
	for _, ref := range resources {
		wg.Add(1)
		go func(ref models.ResourceRef) {
			defer wg.Done()
			intervals, err := se.busyIntervals(ctx, tenantID, ref, date)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			busy[ref.String()] = intervals
		}(ref)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return busy, nil
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, iv := range busy {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}
