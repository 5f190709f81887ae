// File: handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonflow/models"
	"salonflow/services/checkout"
	"salonflow/utils"
)

// CheckoutHandler runs the register. All routes require an authenticated
// staff member; the cart is keyed by the staff ID from the token.
type CheckoutHandler struct {
	Service checkout.Service
	Logger   *zap.Logger
}

func staffID(c *gin.Context) string {
	id, _ := c.Get("staffID")
	s, _ := id.(string)
	return s
}

// GetCart handles GET /api/pos/cart.
func (h *CheckoutHandler) GetCart(c *gin.Context) {
	cart, err := h.Service.GetCart(c.Request.Context(), staffID(c))
	if err != nil {
		h.Logger.Error("GetCart failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load cart", "")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddLine handles POST /api/pos/cart/lines.
func (h *CheckoutHandler) AddLine(c *gin.Context) {
	var line models.SaleLine
	if err := c.ShouldBindJSON(&line); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	cart, err := h.Service.AddLine(c.Request.Context(), staffID(c), line)
	if err != nil {
		h.Logger.Error("AddLine failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", "")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveLine handles DELETE /api/pos/cart/lines/:index.
func (h *CheckoutHandler) RemoveLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid line index", c.Param("index"))
		return
	}
	cart, err := h.Service.RemoveLine(c.Request.Context(), staffID(c), index)
	if err != nil {
		if errors.Is(err, checkout.ErrLineOutOfRange) {
			utils.JSONError(c, http.StatusBadRequest, "invalid line index", err.Error())
			return
		}
		h.Logger.Error("RemoveLine failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", "")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AttachAppointment handles POST /api/pos/cart/appointment.
func (h *CheckoutHandler) AttachAppointment(c *gin.Context) {
	var body struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
		ClientID      string `json:"clientId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	cart, err := h.Service.AttachAppointment(c.Request.Context(), staffID(c), body.AppointmentID, body.ClientID)
	if err != nil {
		h.Logger.Error("AttachAppointment failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", "")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart handles DELETE /api/pos/cart.
func (h *CheckoutHandler) ClearCart(c *gin.Context) {
	if err := h.Service.ClearCart(c.Request.Context(), staffID(c)); err != nil {
		h.Logger.Error("ClearCart failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear cart", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// Checkout handles POST /api/pos/checkout.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var body struct {
		Method    string `json:"method" binding:"required"`
		CardToken string `json:"cardToken"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sale, err := h.Service.Checkout(c.Request.Context(), staffID(c), body.Method, body.CardToken)
	switch {
	case err == nil:
	case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrUnknownMethod):
		utils.JSONError(c, http.StatusBadRequest, "cannot check out", err.Error())
		return
	case errors.Is(err, checkout.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "card payment failed"})
		return
	default:
		h.Logger.Error("Checkout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "checkout failed", "")
		return
	}
	c.JSON(http.StatusCreated, sale)
}
