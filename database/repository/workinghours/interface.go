package hoursRepo

import (
	"context"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
)

// WorkingHoursRepository exposes a tenant's per-weekday open/close windows.
type WorkingHoursRepository interface {
	// FetchForWeekday returns the working-hours record for a weekday
	// (0 = Sunday), or nil when no record exists, which means closed.
	FetchForWeekday(ctx context.Context, tenantID string, weekday int) (*models.WorkingHours, error)
}
