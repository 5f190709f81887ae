// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apptRepo "salonflow/database/repository/appointment"
	barberRepo "salonflow/database/repository/barber"
	"salonflow/services/appointment"
	"salonflow/utils"
)

// AppointmentHandler manages the booking lifecycle over HTTP. Scheduling
// conflicts come back as 409 with a machine-readable reason; a lost race at
// commit time comes back as 409 with retriable=true so the client knows to
// refresh availability and try another slot.
type AppointmentHandler struct {
	Appointments appointment.Service
	Logger       *zap.Logger
}

func (h *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	var conflict *appointment.ConflictError
	switch {
	case errors.As(err, &conflict):
		resp := gin.H{"error": "slot not bookable", "reason": conflict.Reason}
		if conflict.AppointmentID != "" {
			resp["appointmentId"] = conflict.AppointmentID
		}
		c.JSON(http.StatusConflict, resp)
	case errors.Is(err, apptRepo.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "slot was taken while booking",
			"retriable": true,
		})
	case errors.Is(err, appointment.ErrNoServices),
		errors.Is(err, appointment.ErrUnknownService),
		errors.Is(err, appointment.ErrEditCancelled):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
	case errors.Is(err, barberRepo.ErrBarberNotFound):
		utils.JSONError(c, http.StatusNotFound, "barber not found", "")
	case errors.Is(err, apptRepo.ErrAppointmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "appointment not found", "")
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", "")
	}
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	appt, err := h.Appointments.Create(c.Request.Context(), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// Edit handles PATCH /api/appointments/:id.
func (h *AppointmentHandler) Edit(c *gin.Context) {
	var req appointment.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	appt, err := h.Appointments.Edit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Get handles GET /api/appointments/:id.
func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.Appointments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Cancel handles POST /api/appointments/:id/cancel.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	if err := h.Appointments.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Complete handles POST /api/appointments/:id/complete.
func (h *AppointmentHandler) Complete(c *gin.Context) {
	if err := h.Appointments.Complete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

// Delete handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.Appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
