// File: handlers/salon.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	barberRepo "salonflow/database/repository/barber"
	blockRepo "salonflow/database/repository/block"
	catalogRepo "salonflow/database/repository/catalog"
	"salonflow/models"
	"salonflow/services/salon"
	"salonflow/utils"
)

// SalonHandler manages salon settings: barbers and their weekly schedules,
// custom blocks and the service catalogue.
type SalonHandler struct {
	Salon  salon.Service
	Logger *zap.Logger
}

func (h *SalonHandler) writeSettingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, salon.ErrInvalidWindow),
		errors.Is(err, salon.ErrDuplicateWeekday),
		errors.Is(err, salon.ErrInvalidBreak),
		errors.Is(err, salon.ErrInvalidBlock),
		errors.Is(err, salon.ErrUnknownBlockKind),
		errors.Is(err, salon.ErrInvalidService):
		utils.JSONError(c, http.StatusBadRequest, "invalid settings", err.Error())
	case errors.Is(err, barberRepo.ErrBarberNotFound):
		utils.JSONError(c, http.StatusNotFound, "barber not found", "")
	case errors.Is(err, blockRepo.ErrBlockNotFound):
		utils.JSONError(c, http.StatusNotFound, "block not found", "")
	case errors.Is(err, catalogRepo.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "service not found", "")
	default:
		h.Logger.Error("settings operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "settings operation failed", "")
	}
}

// CreateBarber handles POST /api/salon/barbers.
func (h *SalonHandler) CreateBarber(c *gin.Context) {
	var barber models.Barber
	if err := c.ShouldBindJSON(&barber); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if barber.ID == "" {
		barber.ID = uuid.New().String()
	}
	if err := h.Salon.CreateBarber(c.Request.Context(), &barber); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusCreated, barber)
}

// ListBarbers handles GET /api/salon/barbers.
func (h *SalonHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.Salon.ListBarbers(c.Request.Context())
	if err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, barbers)
}

// GetBarber handles GET /api/salon/barbers/:id.
func (h *SalonHandler) GetBarber(c *gin.Context) {
	barber, err := h.Salon.GetBarber(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, barber)
}

// UpdateBarber handles PUT /api/salon/barbers/:id.
func (h *SalonHandler) UpdateBarber(c *gin.Context) {
	var barber models.Barber
	if err := c.ShouldBindJSON(&barber); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	barber.ID = c.Param("id")
	if err := h.Salon.UpdateBarber(c.Request.Context(), &barber); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, barber)
}

// DeleteBarber handles DELETE /api/salon/barbers/:id.
func (h *SalonHandler) DeleteBarber(c *gin.Context) {
	if err := h.Salon.DeleteBarber(c.Request.Context(), c.Param("id")); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SetWorkingWindows handles PUT /api/salon/barbers/:id/windows.
func (h *SalonHandler) SetWorkingWindows(c *gin.Context) {
	var windows []models.WorkingWindow
	if err := c.ShouldBindJSON(&windows); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.Salon.SetWorkingWindows(c.Request.Context(), c.Param("id"), windows); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SaveLunchBreak handles PUT /api/salon/barbers/:id/lunch.
func (h *SalonHandler) SaveLunchBreak(c *gin.Context) {
	var lunch models.LunchBreak
	if err := c.ShouldBindJSON(&lunch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.Salon.SaveLunchBreak(c.Request.Context(), c.Param("id"), lunch); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteLunchBreak handles DELETE /api/salon/barbers/:id/lunch.
func (h *SalonHandler) DeleteLunchBreak(c *gin.Context) {
	if err := h.Salon.DeleteLunchBreak(c.Request.Context(), c.Param("id")); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CreateBlock handles POST /api/salon/blocks.
func (h *SalonHandler) CreateBlock(c *gin.Context) {
	var block models.CustomBlock
	if err := c.ShouldBindJSON(&block); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if err := h.Salon.CreateBlock(c.Request.Context(), &block); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// UpdateBlock handles PUT /api/salon/blocks/:id.
func (h *SalonHandler) UpdateBlock(c *gin.Context) {
	var block models.CustomBlock
	if err := c.ShouldBindJSON(&block); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	block.ID = c.Param("id")
	if err := h.Salon.UpdateBlock(c.Request.Context(), &block); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// DeleteBlock handles DELETE /api/salon/blocks/:id.
func (h *SalonHandler) DeleteBlock(c *gin.Context) {
	if err := h.Salon.DeleteBlock(c.Request.Context(), c.Param("id")); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListBlocks handles GET /api/salon/blocks?barberId=&date=.
func (h *SalonHandler) ListBlocks(c *gin.Context) {
	blocks, err := h.Salon.ListBlocks(c.Request.Context(), c.Query("barberId"), c.Query("date"))
	if err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// CreateService handles POST /api/salon/services.
func (h *SalonHandler) CreateService(c *gin.Context) {
	var svc models.SalonService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if err := h.Salon.CreateService(c.Request.Context(), &svc); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService handles PUT /api/salon/services/:id.
func (h *SalonHandler) UpdateService(c *gin.Context) {
	var svc models.SalonService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	svc.ID = c.Param("id")
	if err := h.Salon.UpdateService(c.Request.Context(), &svc); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /api/salon/services/:id.
func (h *SalonHandler) DeleteService(c *gin.Context) {
	if err := h.Salon.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListServices handles GET /api/salon/services.
func (h *SalonHandler) ListServices(c *gin.Context) {
	services, err := h.Salon.ListServices(c.Request.Context())
	if err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}
