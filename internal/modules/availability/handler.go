package availability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ristorante/internal/pkg/response"
	"ristorante/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/availability/check", h.CheckAvailability)
	rg.GET("/availability/daily", h.DailyOccupancy)
}

// CheckAvailability handles POST /api/v1/availability/check
func (h *Handler) CheckAvailability(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid availability request", details)
		return
	}

	result, err := h.service.FindAvailableTables(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid party size, duration or location")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DailyOccupancy handles GET /api/v1/availability/daily?date=2024-06-01
func (h *Handler) DailyOccupancy(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing date parameter")
		return
	}

	report, err := h.service.DailyOccupancy(c.Request.Context(), dateStr)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute occupancy")
		return
	}

	response.Success(c, http.StatusOK, report)
}
