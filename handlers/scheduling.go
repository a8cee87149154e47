package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/middleware"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/services/scheduling"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/utils"
)

// SchedulingHandler serves the conflict check and next-slot endpoints for the
// dashboard, and the availability endpoints for the public booking page.
type SchedulingHandler struct {
	Engine scheduling.SchedulingEngine
	// Cache holds public availability responses for CacheTTL; nil disables caching.
	Cache    *redis.Client
	CacheTTL time.Duration
}

func NewSchedulingHandler(engine scheduling.SchedulingEngine, cache *redis.Client, cacheTTL time.Duration) *SchedulingHandler {
	return &SchedulingHandler{Engine: engine, Cache: cache, CacheTTL: cacheTTL}
}

// CheckConflictHandler verifies a proposed appointment against existing
// bookings. A conflict is a normal 200 response; when one is found the reply
// carries the next available slot as a suggestion.
func (h *SchedulingHandler) CheckConflictHandler(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	var cand scheduling.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := h.Engine.CheckConflict(c.Request.Context(), tenantID, cand)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	reply := gin.H{
		"hasConflict":              res.HasConflict,
		"conflictingAppointmentId": res.ConflictingAppointmentID,
	}
	if res.HasConflict && !cand.Resource.IsZero() {
		// Best effort: a missing suggestion should not fail the check.
		slot, found, err := h.Engine.FindNextAvailableSlot(c.Request.Context(), tenantID, cand.Resource, cand.Date, cand.DurationMinutes)
		if err != nil {
			utils.GetLogger().Warn("next-slot suggestion failed", zap.String("tenantID", tenantID), zap.Error(err))
		} else if found {
			reply["suggestedTime"] = slot
		}
	}
	c.JSON(http.StatusOK, reply)
}

// NextAvailableSlotHandler returns the earliest bookable start time on a date
// for a resource, used by the dashboard after a conflict.
func (h *SchedulingHandler) NextAvailableSlotHandler(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	resource := models.ParseResourceRef(c.Query("resource"))
	date := c.Query("date")
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "duration must be an integer number of minutes")
		return
	}

	slot, found, err := h.Engine.FindNextAvailableSlot(c.Request.Context(), tenantID, resource, date, duration)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "slot": slot})
}

// AvailableDatesHandler lists the bookable dates in the rolling window for
// the public booking page. The tenant comes from the URL, never from a session.
func (h *SchedulingHandler) AvailableDatesHandler(c *gin.Context) {
	tenantID := c.Param("tenantID")
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "duration must be an integer number of minutes")
		return
	}
	resource := optionalResource(c)

	cacheKey := fmt.Sprintf("avail:dates:%s:%d:%s", tenantID, duration, refKey(resource))
	if h.serveCached(c, cacheKey) {
		return
	}

	dates, err := h.Engine.GetAvailableDates(c.Request.Context(), tenantID, duration, resource)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	h.respondCached(c, cacheKey, gin.H{"dates": dates})
}

// AvailableSlotsHandler lists the bookable start times on a date for the
// public booking page.
func (h *SchedulingHandler) AvailableSlotsHandler(c *gin.Context) {
	tenantID := c.Param("tenantID")
	date := c.Query("date")
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "duration must be an integer number of minutes")
		return
	}
	resource := optionalResource(c)

	cacheKey := fmt.Sprintf("avail:slots:%s:%s:%d:%s", tenantID, date, duration, refKey(resource))
	if h.serveCached(c, cacheKey) {
		return
	}

	slots, err := h.Engine.GetAvailableSlots(c.Request.Context(), tenantID, date, duration, resource)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	h.respondCached(c, cacheKey, gin.H{"date": date, "slots": slots})
}

// optionalResource reads the employeeId filter (or a full "kind:id" resource
// parameter) from the query string; nil means "any available staff".
func optionalResource(c *gin.Context) *models.ResourceRef {
	raw := c.Query("employeeId")
	if raw == "" {
		raw = c.Query("resource")
	}
	if raw == "" {
		return nil
	}
	ref := models.ParseResourceRef(raw)
	return &ref
}

func refKey(ref *models.ResourceRef) string {
	if ref == nil {
		return "any"
	}
	return ref.String()
}

// serveCached replies with a cached payload when one exists.
func (h *SchedulingHandler) serveCached(c *gin.Context, key string) bool {
	if h.Cache == nil {
		return false
	}
	data, err := h.Cache.Get(c.Request.Context(), key).Result()
	if err != nil {
		return false
	}
	c.Data(http.StatusOK, "application/json", []byte(data))
	return true
}

// respondCached sends the payload and stores it for subsequent requests.
func (h *SchedulingHandler) respondCached(c *gin.Context, key string, payload gin.H) {
	data, err := json.Marshal(payload)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to encode response", err.Error())
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(c.Request.Context(), key, data, h.CacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache availability", zap.String("key", key), zap.Error(err))
		}
	}
	c.Data(http.StatusOK, "application/json", data)
}

// respondSchedulingError maps the engine's error taxonomy onto HTTP statuses.
// Repository failures are surfaced, never downgraded to "available".
func respondSchedulingError(c *gin.Context, err error) {
	var invalid *scheduling.InvalidIntervalError
	var mismatch *scheduling.TenantMismatchError
	var unavailable *scheduling.RepositoryUnavailableError
	switch {
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusBadRequest, "invalid interval", invalid.Error())
	case errors.As(err, &mismatch):
		utils.JSONError(c, http.StatusForbidden, "tenant mismatch", "the referenced data belongs to a different business")
	case errors.As(err, &unavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "scheduling data temporarily unavailable", unavailable.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "scheduling check failed", err.Error())
	}
}
