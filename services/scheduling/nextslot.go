package scheduling

import (
	"context"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
)

// FindNextAvailableSlot searches forward through the day's booking grid for
// the earliest start time that lies within working hours and does not
// conflict with the resource's existing appointments. found is false when the
// day is closed or fully booked; that is a normal outcome, not an error.
func (se *DefaultSchedulingEngine) FindNextAvailableSlot(ctx context.Context, tenantID string, resource models.ResourceRef, date string, durationMinutes int) (string, bool, error) {
	day, err := ParseDate(date)
	if err != nil {
		return "", false, err
	}
	if durationMinutes <= 0 {
		return "", false, &InvalidIntervalError{Field: "duration", Reason: "must be a positive number of minutes"}
	}

	if !se.inBookingWindow(date) {
		return "", false, nil
	}

	window, err := se.openWindow(ctx, tenantID, int(day.Weekday()))
	if err != nil {
		return "", false, err
	}
	if window == nil {
		return "", false, nil
	}

	notBefore := se.earliestStart(date, window.open)
	for t := window.open; t+durationMinutes <= window.close; t += se.granularity() {
		if t < notBefore {
			continue
		}
		res, err := se.CheckConflict(ctx, tenantID, Candidate{
			Resource:        resource,
			Date:            date,
			Time:            FormatClock(t),
			DurationMinutes: durationMinutes,
		})
		if err != nil {
			return "", false, err
		}
		if !res.HasConflict {
			return FormatClock(t), true, nil
		}
	}
	return "", false, nil
}

type openWindow struct {
	open  int
	close int
}

// openWindow resolves the tenant's open/close minutes for a weekday, or nil
// when the business is closed that day.
func (se *DefaultSchedulingEngine) openWindow(ctx context.Context, tenantID string, weekday int) (*openWindow, error) {
	wh, err := se.Hours.FetchForWeekday(ctx, tenantID, weekday)
	if err != nil {
		return nil, &RepositoryUnavailableError{Op: "fetch working hours", Err: err}
	}
	if wh == nil || !wh.IsOpen {
		return nil, nil
	}
	open, err := ParseClock(wh.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := ParseClock(wh.CloseTime)
	if err != nil {
		return nil, err
	}
	if close <= open {
		return nil, nil
	}
	return &openWindow{open: open, close: close}, nil
}

// inBookingWindow reports whether the date falls inside the rolling booking
// window, from today through windowDays calendar days ahead. Dates in the
// past or beyond the horizon are never offered. Dates are compared as
// "YYYY-MM-DD" strings, which order the same way the days do.
func (se *DefaultSchedulingEngine) inBookingWindow(date string) bool {
	now := se.now()
	today := now.Format("2006-01-02")
	horizon := now.AddDate(0, 0, se.windowDays()).Format("2006-01-02")
	return date >= today && date < horizon
}

// earliestStart returns the first permissible start minute on the date: the
// opening time, or the current clock when the date is today so that slots
// already in the past are never offered.
func (se *DefaultSchedulingEngine) earliestStart(date string, open int) int {
	now := se.now()
	if date != now.Format("2006-01-02") {
		return open
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	if nowMinutes > open {
		return nowMinutes
	}
	return open
}
