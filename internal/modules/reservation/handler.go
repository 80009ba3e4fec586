package reservation

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ristorante/internal/domain"
	"ristorante/internal/pkg/response"
	"ristorante/internal/pkg/validator"
	"ristorante/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the guest-facing booking endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.CreateReservation)
	rg.GET("/reservations/ref/:code", h.GetByReferenceCode)
}

// RegisterStaffRoutes exposes the staff management endpoints.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.ListReservations)
	rg.GET("/reservations/:id", h.GetReservation)
	rg.PATCH("/reservations/:id/status", h.UpdateStatus)
	rg.PATCH("/reservations/:id/table", h.AssignTable)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation request", details)
		return
	}

	r, err := h.service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) ListReservations(c *gin.Context) {
	var f repository.ReservationFilters

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
			return
		}
		from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		to := from.Add(24 * time.Hour)
		f.From = &from
		f.To = &to
	}

	if status := c.Query("status"); status != "" {
		st := domain.ReservationStatus(status)
		if !st.Valid() {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown reservation status")
			return
		}
		f.StatusIn = []domain.ReservationStatus{st}
	}

	if tableStr := c.Query("table_id"); tableStr != "" {
		id, err := strconv.ParseInt(tableStr, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid table_id")
			return
		}
		f.TableID = &id
	}

	f.Limit = 50
	if limit := c.Query("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 && val <= 200 {
			f.Limit = val
		}
	}
	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			f.Offset = (val - 1) * f.Limit
		}
	}

	list, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": list})
}

func (h *Handler) GetReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation ID")
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) GetByReferenceCode(c *gin.Context) {
	r, err := h.service.GetByReferenceCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) AssignTable(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation ID")
		return
	}

	var req AssignTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.AssignTable(c.Request.Context(), id, req.TableID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation data")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	case ErrTableNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Table not found")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT", "Table is not available for the selected time")
	case ErrTableInactive:
		response.Error(c, http.StatusConflict, "TABLE_OUT_OF_SERVICE", "Table is out of service")
	case ErrCapacityExceeded:
		response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", "Party size exceeds table capacity")
	case ErrInvalidStatusTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation status cannot change this way")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
