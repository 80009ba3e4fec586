package customer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ristorante/internal/pkg/response"
	"ristorante/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterStaffRoutes exposes the guest book.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", h.ListCustomers)
	rg.GET("/customers/:id", h.GetCustomer)
	rg.PUT("/customers/:id", h.UpdateCustomer)
}

// RegisterAdminRoutes exposes the data protection operations.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers/:id/export", h.ExportCustomer)
	rg.DELETE("/customers/:id", h.EraseCustomer)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	f := repository.CustomerFilters{
		Search: c.Query("search"),
		Limit:  50,
	}
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

	result, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer ID")
		return
	}

	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": customer})
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer ID")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	customer, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": customer})
}

func (h *Handler) ExportCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer ID")
		return
	}

	export, err := h.service.Export(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=customer-"+c.Param("id")+"-export.json")
	response.Success(c, http.StatusOK, export)
}

func (h *Handler) EraseCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer ID")
		return
	}

	if err := h.service.Erase(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"anonymized": true})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
	case ErrAlreadyAnonymized:
		response.Error(c, http.StatusConflict, "ALREADY_ANONYMIZED", "Customer data has already been erased")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
