// File: handlers/client.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	clientRepo "salonflow/database/repository/client"
	"salonflow/models"
	"salonflow/utils"
)

// ClientHandler manages the customer directory.
type ClientHandler struct {
	Clients clientRepo.ClientRepository
	Logger  *zap.Logger
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if client.FullName == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", "fullName is required")
		return
	}
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if err := h.Clients.Create(c.Request.Context(), &client); err != nil {
		h.Logger.Error("Create client failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create client", "")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.Clients.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			utils.JSONError(c, http.StatusNotFound, "client not found", c.Param("id"))
			return
		}
		h.Logger.Error("Get client failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load client", "")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Search handles GET /api/clients?q=.
func (h *ClientHandler) Search(c *gin.Context) {
	clients, err := h.Clients.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.Logger.Error("Search clients failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to search clients", "")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	client.ID = c.Param("id")
	if err := h.Clients.Update(c.Request.Context(), &client); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			utils.JSONError(c, http.StatusNotFound, "client not found", client.ID)
			return
		}
		h.Logger.Error("Update client failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update client", "")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /api/clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.Clients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			utils.JSONError(c, http.StatusNotFound, "client not found", c.Param("id"))
			return
		}
		h.Logger.Error("Delete client failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete client", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
