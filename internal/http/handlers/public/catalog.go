package public

import (
	"strconv"
	"strings"

	"github.com/crave-wave/cravewave/internal/constants"
	"github.com/crave-wave/cravewave/internal/http/response"
	"github.com/crave-wave/cravewave/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultCatalogPageSize = 20
	maxCatalogPageSize     = 100
)

func parseCatalogListInput(c *gin.Context) service.CatalogListInput {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultCatalogPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxCatalogPageSize {
		pageSize = defaultCatalogPageSize
	}
	return service.CatalogListInput{
		Category: c.Query("category"),
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     page,
		PageSize: pageSize,
	}
}

func buildCatalogPagination(page *service.CatalogPage) response.Pagination {
	pagination := response.Pagination{
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}
	if page.PageSize > 0 {
		pagination.TotalPage = (page.Total + int64(page.PageSize) - 1) / int64(page.PageSize)
	}
	return pagination
}

// ListHomeMadeFoods lists available home-made dishes
func (h *Handler) ListHomeMadeFoods(c *gin.Context) {
	input := parseCatalogListInput(c)
	page, err := h.CatalogService.ListHomeMade(input)
	if err != nil {
		respondError(c, response.CodeInternal, "could not load the menu", err)
		return
	}
	response.SuccessWithPage(c, page.Items, buildCatalogPagination(page))
}

// ListRestaurantFoods lists available restaurant dishes
func (h *Handler) ListRestaurantFoods(c *gin.Context) {
	input := parseCatalogListInput(c)
	page, err := h.CatalogService.ListRestaurant(input)
	if err != nil {
		respondError(c, response.CodeInternal, "could not load the menu", err)
		return
	}
	response.SuccessWithPage(c, page.Items, buildCatalogPagination(page))
}

// GetFood fetches one dish by source and id
func (h *Handler) GetFood(c *gin.Context) {
	source := strings.TrimSpace(c.Param("source"))
	if source != constants.FoodSourceHomeMade && source != constants.FoodSourceRestaurantMade {
		respondError(c, response.CodeBadRequest, "unknown food source", nil)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid food id", nil)
		return
	}

	listing, err := h.CatalogService.GetListing(source, uint(id))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "could not load the dish")
		return
	}
	response.Success(c, listing)
}
