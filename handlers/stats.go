// File: handlers/stats.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonflow/services/availability"
	"salonflow/services/report"
	"salonflow/services/stats"
	"salonflow/utils"
)

// StatsHandler serves the dashboard numbers and lets the owner trigger a
// report email outside the nightly schedule.
type StatsHandler struct {
	Stats  stats.Service
	Report report.Service
	Logger *zap.Logger
}

// Occupancy handles GET /api/stats/occupancy?date= or ?from=&to=.
func (h *StatsHandler) Occupancy(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		summary, err := h.Stats.OccupancyForDate(c.Request.Context(), date)
		if err != nil {
			h.writeStatsError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	summaries, err := h.Stats.OccupancyForRange(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.writeStatsError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// DailyReport handles GET /api/stats/report?date=.
func (h *StatsHandler) DailyReport(c *gin.Context) {
	reportData, err := h.Stats.BuildDailyReport(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.writeStatsError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportData)
}

// SendReport handles POST /api/stats/report/send.
func (h *StatsHandler) SendReport(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.Report.SendDailyReport(c.Request.Context(), body.Date); err != nil {
		if errors.Is(err, report.ErrNoRecipients) {
			utils.JSONError(c, http.StatusBadRequest, "no recipients configured", "")
			return
		}
		h.writeStatsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (h *StatsHandler) writeStatsError(c *gin.Context, err error) {
	if errors.Is(err, availability.ErrInvalidDate) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	h.Logger.Error("stats operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "stats operation failed", "")
}
