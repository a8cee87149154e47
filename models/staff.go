package models

// Staff roles, stored on the staff collection and mapped to resource kinds.
const (
	StaffRoleEmployee = "employee"
	StaffRoleDoctor   = "doctor"
)

// StaffMember is a tenant's bookable team member.
type StaffMember struct {
	ID       string `bson:"id" json:"id"`
	TenantID string `bson:"tenantId" json:"tenantId"`
	Name     string `bson:"name" json:"name"`
	Role     string `bson:"role" json:"role"` // employee | doctor
	Active   bool   `bson:"active" json:"active"`
}

// Ref returns the resource reference used to key this member's bookings.
func (s StaffMember) Ref() ResourceRef {
	if s.Role == StaffRoleDoctor {
		return DoctorRef(s.ID)
	}
	return EmployeeRef(s.ID)
}
