package staffRepo

import (
	"context"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
)

// StaffRepository exposes the tenant's roster of bookable staff.
type StaffRepository interface {
	// FetchBookableResources returns the resource refs of every active
	// employee and doctor, used by the "any available staff" queries.
	FetchBookableResources(ctx context.Context, tenantID string) ([]models.ResourceRef, error)
}
