package settings

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ristorante/internal/domain"
	"ristorante/internal/pkg/response"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	GetAll(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, key, value string) error
}

// Handler serves the restaurant settings key/value store. Thin enough that
// it talks to the repository directly.
type Handler struct {
	repo SettingRepository
}

func NewHandler(repo SettingRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.GetAll)
	rg.GET("/settings/:key", h.Get)
	rg.PUT("/settings", h.Put)
}

func (h *Handler) GetAll(c *gin.Context) {
	settings, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) Get(c *gin.Context) {
	setting, err := h.repo.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Setting not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"setting": setting})
}

// Put upserts a batch of settings in one request.
func (h *Handler) Put(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil || len(req) == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Expected a non-empty key/value object")
		return
	}

	for key, value := range req {
		if err := h.repo.Upsert(c.Request.Context(), key, value); err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"updated": len(req)})
}
