package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "github.com/HMkaraman/beauty-center-dashboard-sub004/database/repository/appointment"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/middleware"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/services/scheduling"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/utils"
)

// AppointmentHandler serves the appointment write path for the dashboard.
type AppointmentHandler struct {
	Repo   appointmentRepo.AppointmentRepository
	Engine scheduling.SchedulingEngine
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository, engine scheduling.SchedulingEngine) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Engine: engine}
}

type createAppointmentInput struct {
	ClientID        string             `json:"clientId"`
	ServiceID       string             `json:"serviceId"`
	Resource        models.ResourceRef `json:"resource"`
	Date            string             `json:"date" binding:"required"`
	Time            string             `json:"time" binding:"required"`
	DurationMinutes int                `json:"durationMinutes" binding:"required"`
	Notes           string             `json:"notes"`
}

// CreateAppointmentHandler books an appointment. The advisory conflict check
// runs first; on conflict the reply suggests the next free slot. After the
// insert the check runs once more excluding the new record, and the record is
// rolled back if a concurrent booking slipped in between check and insert.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	var input createAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cand := scheduling.Candidate{
		Resource:        input.Resource,
		Date:            input.Date,
		Time:            input.Time,
		DurationMinutes: input.DurationMinutes,
	}
	res, err := h.Engine.CheckConflict(c.Request.Context(), tenantID, cand)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if res.HasConflict {
		h.respondConflict(c, tenantID, cand, res.ConflictingAppointmentID)
		return
	}

	now := time.Now()
	appt := models.Appointment{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		ClientID:        input.ClientID,
		ServiceID:       input.ServiceID,
		Resource:        input.Resource,
		Date:            input.Date,
		Time:            input.Time,
		DurationMinutes: input.DurationMinutes,
		Status:          models.AppointmentScheduled,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.Repo.Create(c.Request.Context(), &appt); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", err.Error())
		return
	}

	// Re-check excluding our own record. Two requests can both pass the
	// advisory check; the loser of the race backs out here.
	cand.ExcludeID = appt.ID
	res, err = h.Engine.CheckConflict(c.Request.Context(), tenantID, cand)
	if err != nil || res.HasConflict {
		if cancelErr := h.Repo.Cancel(c.Request.Context(), tenantID, appt.ID); cancelErr != nil {
			utils.GetLogger().Error("failed to roll back conflicting appointment",
				zap.String("appointmentID", appt.ID), zap.Error(cancelErr))
		}
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		h.respondConflict(c, tenantID, cand, res.ConflictingAppointmentID)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// respondConflict turns a detected conflict into the "time unavailable, try X
// instead" reply.
func (h *AppointmentHandler) respondConflict(c *gin.Context, tenantID string, cand scheduling.Candidate, conflictingID string) {
	reply := gin.H{
		"error":                    "the selected time is no longer available",
		"conflictingAppointmentId": conflictingID,
	}
	if !cand.Resource.IsZero() {
		slot, found, err := h.Engine.FindNextAvailableSlot(c.Request.Context(), tenantID, cand.Resource, cand.Date, cand.DurationMinutes)
		if err == nil && found {
			reply["suggestedTime"] = slot
		}
	}
	c.JSON(http.StatusConflict, reply)
}

// GetAppointmentHandler returns one appointment, scoped to the session tenant.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	tenantID := middleware.TenantID(c)
	appt, err := h.Repo.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler cancels an appointment, freeing its slot.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	tenantID := middleware.TenantID(c)
	if err := h.Repo.Cancel(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.AppointmentCancelled})
}
