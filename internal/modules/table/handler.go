package table

import (
	"net/http"
	"strconv"

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

// RegisterStaffRoutes exposes the floor plan and the live status board.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/tables", h.ListTables)
	rg.GET("/tables/status", h.ListTablesWithStatus)
}

// RegisterAdminRoutes exposes floor plan management.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/tables", h.CreateTable)
	rg.PUT("/tables/:id", h.UpdateTable)
	rg.DELETE("/tables/:id", h.DeleteTable)
}

func (h *Handler) ListTables(c *gin.Context) {
	var f repository.TableFilters

	if capStr := c.Query("min_capacity"); capStr != "" {
		val, err := strconv.Atoi(capStr)
		if err != nil || val < 1 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid min_capacity")
			return
		}
		f.MinCapacity = &val
	}
	if loc := c.Query("location"); loc != "" {
		location := domain.TableLocation(loc)
		if !location.Valid() {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown location")
			return
		}
		f.Location = &location
	}
	if activeStr := c.Query("active"); activeStr != "" {
		active := activeStr == "true"
		f.IsActive = &active
	}

	tables, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tables": tables})
}

func (h *Handler) ListTablesWithStatus(c *gin.Context) {
	tables, err := h.service.ListWithStatus(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tables": tables})
}

func (h *Handler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid table", details)
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"table": t})
}

func (h *Handler) UpdateTable(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid table ID")
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid table", details)
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"table": t})
}

func (h *Handler) DeleteTable(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid table ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid table data")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Table not found")
	case ErrDuplicateNumber:
		response.Error(c, http.StatusConflict, "DUPLICATE_TABLE_NUMBER", "A table with this number already exists")
	case ErrHasReservations:
		response.Error(c, http.StatusConflict, "TABLE_IN_USE", "Table has upcoming reservations; deactivate it instead")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
