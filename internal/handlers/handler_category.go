package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
	"github.com/hasanqazi87/lab-site/internal/dto"
)

// categoryHandler handles HTTP requests for invoice category reference data
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{
		categoryService: cs,
	}
}

// registerCategoryRoutes registers the invoice category routes
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categoriesGroup := rg.Group("/categories")
	{
		categoriesGroup.GET("", h.listCategories)
		categoriesGroup.GET("/:code", h.getCategory)
	}
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		respondError(c, apperrors.ErrValidation)
		return
	}

	category, err := h.categoryService.GetCategoryByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(*category))
}
