// File: handlers/availability.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	barberRepo "salonflow/database/repository/barber"
	catalogRepo "salonflow/database/repository/catalog"
	"salonflow/models"
	"salonflow/services/availability"
	"salonflow/services/schedule"
	"salonflow/utils"
)

// slotCacheTTL keeps repeated slot lookups for the same day off the database
// while a receptionist pages through the calendar. It is short enough that a
// stale answer is caught by the conflict check and the transactional re-check
// on booking.
const slotCacheTTL = 10 * time.Second

// AvailabilityHandler serves the read side of scheduling: bookable slots,
// conflict checks and the day calendar.
type AvailabilityHandler struct {
	Availability availability.Service
	Catalog      catalogRepo.CatalogRepository
	Logger       *zap.Logger
}

// resolveDuration derives the slot duration, buffers included, from a
// comma-separated serviceIds query. Unknown or inactive entries reject the
// whole query.
func (h *AvailabilityHandler) resolveDuration(c *gin.Context, serviceIDs string) (int, bool) {
	ids := strings.Split(serviceIDs, ",")
	services, err := h.Catalog.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		h.Logger.Error("GetSlots: catalogue lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve services", "")
		return 0, false
	}
	byID := make(map[string]models.SalonService, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	total := 0
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok || !svc.Active {
			utils.JSONError(c, http.StatusBadRequest, "unknown or inactive service", id)
			return 0, false
		}
		total += svc.DurationMin + svc.BufferMin
	}
	return total, true
}

// GetSlots handles GET /api/availability/slots?barberId=&date= with either
// serviceIds= (duration derived from the catalogue, buffers included) or an
// explicit durationMin=.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	barberID := c.Query("barberId")
	date := c.Query("date")
	durationMin, err := strconv.Atoi(c.DefaultQuery("durationMin", "0"))
	if err != nil || barberID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid query",
			"barberId, date and serviceIds or a numeric durationMin are required")
		return
	}
	if serviceIDs := c.Query("serviceIds"); serviceIDs != "" {
		var ok bool
		if durationMin, ok = h.resolveDuration(c, serviceIDs); !ok {
			return
		}
	}

	cacheKey := fmt.Sprintf("slots:%s:%s:%d", barberID, date, durationMin)
	if cached, cerr := utils.GetCacheClient().Get(c.Request.Context(), cacheKey).Bytes(); cerr == nil {
		c.Data(http.StatusOK, "application/json", cached)
		return
	} else if !errors.Is(cerr, redis.Nil) {
		h.Logger.Warn("slot cache read failed", zap.Error(cerr))
	}

	slots, err := h.Availability.GetAvailableSlots(c.Request.Context(), barberID, date, durationMin)
	switch {
	case err == nil:
	case errors.Is(err, availability.ErrInvalidDate), errors.Is(err, availability.ErrInvalidDuration):
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	case errors.Is(err, barberRepo.ErrBarberNotFound):
		utils.JSONError(c, http.StatusNotFound, "barber not found", barberID)
		return
	default:
		h.Logger.Error("GetSlots: availability query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		return
	}

	// An empty day is a normal answer, not an error.
	if slots == nil {
		slots = []time.Time{}
	}
	resp := gin.H{"barberId": barberID, "date": date, "slots": slots}
	if payload, merr := json.Marshal(resp); merr == nil {
		if cerr := utils.GetCacheClient().Set(c.Request.Context(), cacheKey, payload, slotCacheTTL).Err(); cerr != nil {
			h.Logger.Warn("slot cache write failed", zap.Error(cerr))
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CheckConflict handles POST /api/availability/check.
func (h *AvailabilityHandler) CheckConflict(c *gin.Context) {
	var body struct {
		BarberID             string    `json:"barberId" binding:"required"`
		Start                time.Time `json:"start" binding:"required"`
		End                  time.Time `json:"end" binding:"required"`
		ExcludeAppointmentID string    `json:"excludeAppointmentId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.Availability.CheckConflict(c.Request.Context(), body.BarberID,
		schedule.Interval{Start: body.Start, End: body.End}, body.ExcludeAppointmentID)
	switch {
	case err == nil:
	case errors.Is(err, schedule.ErrInvertedInterval):
		utils.JSONError(c, http.StatusBadRequest, "invalid interval", err.Error())
		return
	case errors.Is(err, barberRepo.ErrBarberNotFound):
		utils.JSONError(c, http.StatusNotFound, "barber not found", body.BarberID)
		return
	default:
		h.Logger.Error("CheckConflict: check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to check conflict", "")
		return
	}

	resp := gin.H{"ok": result.OK}
	if !result.OK {
		resp["reason"] = result.Reason
		if result.AppointmentID != "" {
			resp["appointmentId"] = result.AppointmentID
		}
	}
	c.JSON(http.StatusOK, resp)
}

// DayCalendar handles GET /api/availability/calendar?date=.
func (h *AvailabilityHandler) DayCalendar(c *gin.Context) {
	date := c.Query("date")
	views, err := h.Availability.DayCalendar(c.Request.Context(), date)
	switch {
	case err == nil:
	case errors.Is(err, availability.ErrInvalidDate):
		utils.JSONError(c, http.StatusBadRequest, "invalid date", date)
		return
	default:
		h.Logger.Error("DayCalendar: query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to build calendar", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "barbers": views})
}
