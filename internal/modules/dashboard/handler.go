package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carservice/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard-stats", h.Stats)
	rg.GET("/dashboard-stats/series", h.Series)
}

// Stats serves the raw payload. No envelope: the shape is the wire contract
// consumed by the stats client and the panel.
func (h *Handler) Stats(c *gin.Context) {
	payload, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch dashboard stats")
		return
	}

	c.JSON(http.StatusOK, payload)
}

// Series serves the aggregated, display-ready report.
func (h *Handler) Series(c *gin.Context) {
	report, err := h.service.Series(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard series")
		return
	}

	c.JSON(http.StatusOK, report)
}
