package models

import "strings"

// ResourceKind discriminates the kinds of bookable resources a tenant can have.
type ResourceKind string

const (
	ResourceEmployee   ResourceKind = "employee"
	ResourceDoctor     ResourceKind = "doctor"
	ResourceUnassigned ResourceKind = "unassigned"
)

// ResourceRef identifies a bookable staff member. Two refs denote the same
// resource only when both kind and id match exactly; an employee and a doctor
// booked at the same time never collide with each other.
//
// Legacy records that only carry a free-text employee name are represented as
// kind "unassigned" with the name as the id.
type ResourceRef struct {
	Kind ResourceKind `bson:"kind" json:"kind"`
	ID   string       `bson:"id" json:"id"`
}

func EmployeeRef(id string) ResourceRef {
	return ResourceRef{Kind: ResourceEmployee, ID: id}
}

func DoctorRef(id string) ResourceRef {
	return ResourceRef{Kind: ResourceDoctor, ID: id}
}

func UnassignedRef(label string) ResourceRef {
	return ResourceRef{Kind: ResourceUnassigned, ID: label}
}

// IsZero reports whether the ref identifies nothing. A zero ref matches no
// other ref, so candidates without a resource can never conflict by resource.
func (r ResourceRef) IsZero() bool {
	return r.Kind == "" && r.ID == ""
}

// Equal reports whether two refs identify the same resource.
func (r ResourceRef) Equal(other ResourceRef) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	return r.Kind == other.Kind && r.ID == other.ID
}

// String renders the ref in the "kind:id" form used in query parameters and logs.
func (r ResourceRef) String() string {
	if r.IsZero() {
		return ""
	}
	return string(r.Kind) + ":" + r.ID
}

// ParseResourceRef parses the "kind:id" form. A bare value without a kind
// prefix is treated as an employee id, matching how older clients send it.
func ParseResourceRef(s string) ResourceRef {
	if s == "" {
		return ResourceRef{}
	}
	kind, id, found := strings.Cut(s, ":")
	if !found {
		return EmployeeRef(s)
	}
	switch ResourceKind(kind) {
	case ResourceEmployee, ResourceDoctor, ResourceUnassigned:
		return ResourceRef{Kind: ResourceKind(kind), ID: id}
	default:
		return EmployeeRef(s)
	}
}
