package api

import (
	"net/http"

	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	site config.SiteConfig
}

func NewSiteHandler(cfg config.Config) *SiteHandler {
	return &SiteHandler{site: cfg.Site}
}

// @Summary Site settings
// @Description Branding shown by the storefront
// @Tags site
// @Produce json
// @Success 200 {object} resdto.SiteResponse
// @Router /site [get]
func (h *SiteHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSiteConfig(h.site))
}
