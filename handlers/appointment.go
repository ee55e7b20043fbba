package handlers

import (
	"errors"
	"net/http"

	"clinicsched/services/booking"
	"clinicsched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves appointment creation, listing and cancellation.
type AppointmentHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewAppointmentHandler wires the handler.
func NewAppointmentHandler(svc booking.BookingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// CreateAppointmentHandler creates an appointment after the conflict check clears it.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input struct {
		StaffID    string      `json:"staffId" binding:"required"`
		Date       string      `json:"date" binding:"required"`
		Start      int         `json:"start"`
		Duration   interface{} `json:"duration"`
		Label      string      `json:"label"`
		ClientName string      `json:"clientName"`
		Notes      string      `json:"notes"`
		Recurrence string      `json:"recurrence"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.CreateAppointment(c.Request.Context(), booking.CreateInput{
		StaffID:    input.StaffID,
		Date:       input.Date,
		Start:      input.Start,
		Duration:   input.Duration,
		Label:      input.Label,
		ClientName: input.ClientName,
		Notes:      input.Notes,
		Recurrence: input.Recurrence,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrScheduleConflict):
			utils.JSONConflict(c, err.Error())
		case errors.Is(err, booking.ErrAvailabilityCheck):
			// Retry-able: the conflict check could not run, creation is blocked.
			utils.JSONError(c, http.StatusServiceUnavailable, "could not verify availability, please retry", err.Error())
		case errors.Is(err, booking.ErrStaffNotFound):
			utils.JSONError(c, http.StatusNotFound, "staff member not found", err.Error())
		case errors.Is(err, booking.ErrInvalidCandidate):
			utils.JSONError(c, http.StatusBadRequest, "invalid appointment request", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", err.Error())
		}
		return
	}

	resp := gin.H{"appointment": result.Appointment}
	if result.DurationDefaulted {
		resp["warning"] = "duration was malformed and defaulted to 30 minutes"
	}
	c.JSON(http.StatusCreated, resp)
}

// ListAppointmentsHandler returns a staff member's appointments within a date range.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	staffID := c.Query("staff")
	from := c.Query("from")
	to := c.Query("to")
	if staffID == "" || from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "staff, from and to are required")
		return
	}

	appts, err := h.Service.ListAppointments(c.Request.Context(), staffID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CancelAppointmentHandler marks an appointment cancelled.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.CancelAppointment(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel appointment", err.Error())
		return
	}
	h.Logger.Info("Appointment cancelled", zap.String("appointmentId", id))
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
