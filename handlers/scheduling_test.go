package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/middleware"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/services/scheduling"
)

type fakeEngine struct {
	conflict scheduling.ConflictResult
	slot     string
	found    bool
	dates    []string
	slots    []string
	err      error
}

func (f *fakeEngine) CheckConflict(context.Context, string, scheduling.Candidate) (scheduling.ConflictResult, error) {
	return f.conflict, f.err
}

func (f *fakeEngine) FindNextAvailableSlot(context.Context, string, models.ResourceRef, string, int) (string, bool, error) {
	return f.slot, f.found, f.err
}

func (f *fakeEngine) GetAvailableDates(context.Context, string, int, *models.ResourceRef) ([]string, error) {
	return f.dates, f.err
}

func (f *fakeEngine) GetAvailableSlots(context.Context, string, string, int, *models.ResourceRef) ([]string, error) {
	return f.slots, f.err
}

// stubTenant pins the request to a tenant the way the auth middleware would.
func stubTenant(tenantID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.TenantIDKey, tenantID)
		c.Next()
	}
}

func newTestRouter(engine scheduling.SchedulingEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSchedulingHandler(engine, nil, 0)
	r := gin.New()
	r.POST("/api/scheduling/conflict-check", stubTenant("tenant-a"), h.CheckConflictHandler)
	r.GET("/api/scheduling/next-slot", stubTenant("tenant-a"), h.NextAvailableSlotHandler)
	r.GET("/api/public/:tenantID/booking/dates", h.AvailableDatesHandler)
	r.GET("/api/public/:tenantID/booking/slots", h.AvailableSlotsHandler)
	return r
}

func TestCheckConflictHandler_SuggestsNextSlot(t *testing.T) {
	engine := &fakeEngine{
		conflict: scheduling.ConflictResult{HasConflict: true, ConflictingAppointmentID: "a1"},
		slot:     "11:00",
		found:    true,
	}
	r := newTestRouter(engine)

	body := `{"resource":{"kind":"employee","id":"emp-1"},"date":"2026-03-02","time":"10:30","durationMinutes":30}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scheduling/conflict-check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var reply map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if reply["hasConflict"] != true {
		t.Fatalf("hasConflict = %v", reply["hasConflict"])
	}
	if reply["conflictingAppointmentId"] != "a1" {
		t.Fatalf("conflictingAppointmentId = %v", reply["conflictingAppointmentId"])
	}
	if reply["suggestedTime"] != "11:00" {
		t.Fatalf("suggestedTime = %v", reply["suggestedTime"])
	}
}

func TestAvailableSlotsHandler(t *testing.T) {
	engine := &fakeEngine{slots: []string{"09:00", "09:15"}}
	r := newTestRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/tenant-a/booking/slots?date=2026-03-02&duration=30&employeeId=emp-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var reply struct {
		Date  string   `json:"date"`
		Slots []string `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(reply.Slots) != 2 || reply.Slots[0] != "09:00" {
		t.Fatalf("slots = %v", reply.Slots)
	}
}

func TestAvailableSlotsHandler_BadDuration(t *testing.T) {
	r := newTestRouter(&fakeEngine{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/tenant-a/booking/slots?date=2026-03-02&duration=soon", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAvailableDatesHandler_RepositoryDown(t *testing.T) {
	engine := &fakeEngine{err: &scheduling.RepositoryUnavailableError{Op: "fetch appointments", Err: errors.New("timeout")}}
	r := newTestRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/tenant-a/booking/dates?duration=30", nil)
	r.ServeHTTP(w, req)

	// Fail closed: a repository outage is an error response, never an empty
	// "all free" calendar.
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestNextAvailableSlotHandler_NoneFound(t *testing.T) {
	r := newTestRouter(&fakeEngine{found: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scheduling/next-slot?resource=employee:emp-1&date=2026-03-02&duration=30", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var reply map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if reply["found"] != false {
		t.Fatalf("found = %v, want false", reply["found"])
	}
}
