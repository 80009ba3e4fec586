package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ristorante/internal/pkg/response"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Stats)
	rg.GET("/dashboard/ws", h.WebSocket)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.TodayStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) WebSocket(c *gin.Context) {
	h.hub.ServeWS(c)
}
