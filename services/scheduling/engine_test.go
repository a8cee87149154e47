package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
)

// Test fixtures: a Monday salon open 09:00-17:00 with one stylist and one
// doctor, and an injectable clock frozen at 08:00 that morning.

var (
	testMonday  = "2026-03-02"
	testTuesday = "2026-03-03"
	stylist     = models.EmployeeRef("emp-1")
	stylistTwo  = models.EmployeeRef("emp-2")
	doctor      = models.DoctorRef("doc-1")
)

func testClock() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

type fakeAppointmentRepo struct {
	appts []models.Appointment
	err   error
}

func (f *fakeAppointmentRepo) FetchForDay(_ context.Context, tenantID string, resource models.ResourceRef, date string) ([]models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Appointment
	for _, a := range f.appts {
		if a.TenantID == tenantID && a.Date == date && a.Resource.Equal(resource) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, tenantID, id string) (*models.Appointment, error) {
	for _, a := range f.appts {
		if a.TenantID == tenantID && a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *models.Appointment) error {
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, tenantID, id string) error {
	for i := range f.appts {
		if f.appts[i].TenantID == tenantID && f.appts[i].ID == id {
			f.appts[i].Status = models.AppointmentCancelled
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", id)
}

type fakeHoursRepo struct {
	hours map[int]models.WorkingHours
	err   error
}

func (f *fakeHoursRepo) FetchForWeekday(_ context.Context, tenantID string, weekday int) (*models.WorkingHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	wh, ok := f.hours[weekday]
	if !ok {
		return nil, nil
	}
	wh.TenantID = tenantID
	return &wh, nil
}

type fakeStaffRepo struct {
	roster []models.ResourceRef
	err    error
}

func (f *fakeStaffRepo) FetchBookableResources(_ context.Context, _ string) ([]models.ResourceRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roster, nil
}

func mondayHours() map[int]models.WorkingHours {
	return map[int]models.WorkingHours{
		1: {Weekday: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}
}

func appt(id string, resource models.ResourceRef, date, clock string, duration int, status string) models.Appointment {
	return models.Appointment{
		ID:              id,
		TenantID:        "tenant-a",
		Resource:        resource,
		Date:            date,
		Time:            clock,
		DurationMinutes: duration,
		Status:          status,
	}
}

func newTestEngine(appts *fakeAppointmentRepo, hours *fakeHoursRepo, staff *fakeStaffRepo) *DefaultSchedulingEngine {
	if appts == nil {
		appts = &fakeAppointmentRepo{}
	}
	if hours == nil {
		hours = &fakeHoursRepo{hours: mondayHours()}
	}
	if staff == nil {
		staff = &fakeStaffRepo{roster: []models.ResourceRef{stylist, stylistTwo}}
	}
	return &DefaultSchedulingEngine{
		Appointments: appts,
		Hours:        hours,
		Staff:        staff,
		Now:          testClock,
	}
}
