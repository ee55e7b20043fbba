package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clinicsched/models"
	"clinicsched/services/agenda"
	"clinicsched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgendaHandler serves the calendar views.
type AgendaHandler struct {
	Service agenda.AgendaService
	Logger  *zap.Logger
}

// NewAgendaHandler wires the handler.
func NewAgendaHandler(svc agenda.AgendaService, logger *zap.Logger) *AgendaHandler {
	return &AgendaHandler{Service: svc, Logger: logger}
}

// parseViewQuery reads the query parameters shared by the view endpoints.
func parseViewQuery(c *gin.Context) (date string, staffIDs []string, width float64, ok bool) {
	date = c.Query("date")
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	if raw := c.Query("staff"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				staffIDs = append(staffIDs, id)
			}
		}
	}

	width = 400
	if raw := c.Query("width"); raw != "" {
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil || w <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid width", raw)
			return "", nil, 0, false
		}
		width = w
	}
	return date, staffIDs, width, true
}

// DayViewHandler returns the laid-out day grid for the selected staff.
func (h *AgendaHandler) DayViewHandler(c *gin.Context) {
	date, staffIDs, width, ok := parseViewQuery(c)
	if !ok {
		return
	}

	view, err := h.Service.DayView(c.Request.Context(), date, staffIDs, width, time.Now())
	if err != nil {
		if errors.Is(err, agenda.ErrStaleView) {
			c.Status(http.StatusNoContent)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute day view", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// WeekViewHandler returns the laid-out week grid for the selected staff.
func (h *AgendaHandler) WeekViewHandler(c *gin.Context) {
	date, staffIDs, width, ok := parseViewQuery(c)
	if !ok {
		return
	}

	view, err := h.Service.WeekView(c.Request.Context(), date, staffIDs, width, time.Now())
	if err != nil {
		if errors.Is(err, agenda.ErrStaleView) {
			c.Status(http.StatusNoContent)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute week view", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// PinchHandler applies a completed pinch gesture's scale factor.
func (h *AgendaHandler) PinchHandler(c *gin.Context) {
	var input struct {
		Scale float64 `json:"scale" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	zoom := h.Service.Pinch(input.Scale)
	c.JSON(http.StatusOK, gin.H{"zoom": zoom, "labelInterval": zoom.LabelInterval()})
}

// NavigateHandler steps a date forward or backward by a view unit.
func (h *AgendaHandler) NavigateHandler(c *gin.Context) {
	var input struct {
		Unit      string `json:"unit" binding:"required"`
		Date      string `json:"date" binding:"required"`
		Direction int    `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	next, err := h.Service.Navigate(input.Unit, input.Date, input.Direction)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid navigation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": next})
}
