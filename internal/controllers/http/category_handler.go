package http

import (
	"net/http"

	"github.com/arjunmnath/probidder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()
	if b, ok := h.cacheGet(ctx, categoriesCacheKey); ok {
		c.Data(http.StatusOK, "application/json", b)
		return
	}

	categories, err := h.categories.List()
	if err != nil {
		writeError(c, err)
		return
	}
	h.cacheSet(ctx, categoriesCacheKey, categories)
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categories.Create(req.CategoryName)
	if err != nil {
		writeError(c, err)
		return
	}
	h.cacheDel(c.Request.Context(), categoriesCacheKey)
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	category, err := h.categories.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categories.Update(id, req.CategoryName)
	if err != nil {
		writeError(c, err)
		return
	}
	h.cacheDel(c.Request.Context(), categoriesCacheKey)
	c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.categories.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	h.cacheDel(c.Request.Context(), categoriesCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// ListCategoryProducts defaults to active listings, matching the storefront
// browse view.
func (h *Handler) ListCategoryProducts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	filter, err := listFilterFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if filter.Status == "" {
		filter.Status = domain.ProductActive
	}

	products, err := h.products.ListByCategory(id, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
