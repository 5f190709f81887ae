// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	staffRepo "salonflow/database/repository/staff"
	"salonflow/models"
	"salonflow/utils"
)

const tokenLifetime = 12 * time.Hour

// AuthHandler signs staff in and out of the POS.
type AuthHandler struct {
	Staff  staffRepo.StaffRepository
	Logger *zap.Logger
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var body struct {
		FullName string `json:"fullName" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if _, err := h.Staff.GetByEmail(c.Request.Context(), body.Email); err == nil {
		utils.JSONError(c, http.StatusConflict, "email already registered", body.Email)
		return
	} else if !errors.Is(err, staffRepo.ErrStaffNotFound) {
		h.Logger.Error("Register: staff lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", "")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error("Register: hashing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", "")
		return
	}

	role := body.Role
	if role != "owner" {
		role = "staff"
	}
	member := &models.Staff{
		ID:           uuid.New().String(),
		FullName:     body.FullName,
		Email:        body.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.Staff.Create(c.Request.Context(), member); err != nil {
		h.Logger.Error("Register: insert failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", "")
		return
	}

	token, err := utils.GenerateToken(member.ID, member.Email, tokenLifetime)
	if err != nil {
		h.Logger.Error("Register: token generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"staff": member, "token": token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	member, err := h.Staff.GetByEmail(c.Request.Context(), body.Email)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(body.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(member.ID, member.Email, tokenLifetime)
	if err != nil {
		h.Logger.Error("Login: token generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "login failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": member, "token": token})
}
