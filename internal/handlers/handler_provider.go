package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
	"github.com/hasanqazi87/lab-site/internal/dto"
)

// providerHandler handles HTTP requests for provider reference data
type providerHandler struct {
	providerService portssvc.ProviderSvcFacade
}

func newProviderHandler(ps portssvc.ProviderSvcFacade) *providerHandler {
	return &providerHandler{
		providerService: ps,
	}
}

// registerProviderRoutes registers the provider reference routes
func registerProviderRoutes(rg *gin.RouterGroup, providerService portssvc.ProviderSvcFacade) {
	h := newProviderHandler(providerService)

	providersGroup := rg.Group("/providers")
	{
		providersGroup.GET("", h.listProviders)
		providersGroup.GET("/:provider_id", h.getProvider)
	}
}

func (h *providerHandler) listProviders(c *gin.Context) {
	providers, err := h.providerService.ListProviders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProviderResponses(providers))
}

func (h *providerHandler) getProvider(c *gin.Context) {
	providerID, err := strconv.ParseInt(c.Param("provider_id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.ErrValidation)
		return
	}

	provider, err := h.providerService.GetProviderByID(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProviderResponse(*provider))
}
