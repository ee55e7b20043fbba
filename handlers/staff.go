package handlers

import (
	"net/http"
	"time"

	staffRepo "clinicsched/database/repository/staff"
	"clinicsched/models"
	"clinicsched/services/schedule"
	"clinicsched/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// StaffHandler serves staff listing and registration.
type StaffHandler struct {
	Repo   staffRepo.StaffRepository
	Logger *zap.Logger
}

// NewStaffHandler wires the handler.
func NewStaffHandler(repo staffRepo.StaffRepository, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{Repo: repo, Logger: logger}
}

// ListStaffHandler returns all staff in stable order with their grid colors.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	staff, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list staff", err.Error())
		return
	}

	type staffWithColor struct {
		models.Staff
		Color string `json:"color"`
	}
	out := make([]staffWithColor, len(staff))
	for i, s := range staff {
		out[i] = staffWithColor{Staff: s, Color: schedule.ColorFor(s.ID)}
	}
	c.JSON(http.StatusOK, gin.H{"staff": out})
}

// RegisterStaffHandler creates a staff member.
func (h *StaffHandler) RegisterStaffHandler(c *gin.Context) {
	var input struct {
		DisplayName string `json:"displayName" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
		Role        string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if existing, err := h.Repo.GetByEmail(c.Request.Context(), input.Email); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check email", err.Error())
		return
	} else if existing != nil {
		utils.JSONError(c, http.StatusConflict, "email already registered", input.Email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password", err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = "audiologist"
	}
	staff := &models.Staff{
		ID:           uuid.New().String(),
		DisplayName:  input.DisplayName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := h.Repo.Create(c.Request.Context(), staff); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create staff member", err.Error())
		return
	}

	h.Logger.Info("Staff member registered", zap.String("staffId", staff.ID))
	c.JSON(http.StatusCreated, gin.H{"staff": staff, "color": schedule.ColorFor(staff.ID)})
}
