package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"
	"github.com/arjunmnath/probidder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return v, nil
}

func listFilterFromQuery(c *gin.Context) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		Status:    domain.ProductStatus(c.Query("status")),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	var err error
	if filter.Limit, err = intQuery(c, "limit"); err != nil {
		return repository.ProductFilter{}, err
	}
	if filter.Offset, err = intQuery(c, "offset"); err != nil {
		return repository.ProductFilter{}, err
	}
	return filter, nil
}

func (h *Handler) ListProducts(c *gin.Context) {
	filter, err := listFilterFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	products, err := h.products.List(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) TrendingProducts(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		writeError(c, err)
		return
	}
	if limit <= 0 {
		limit = services.DefaultTrendingLimit
	}

	ctx := c.Request.Context()
	if b, ok := h.cacheGet(ctx, trendingCacheKey(limit)); ok {
		c.Data(http.StatusOK, "application/json", b)
		return
	}

	trending, err := h.products.Trending(limit)
	if err != nil {
		writeError(c, err)
		return
	}
	h.cacheSet(ctx, trendingCacheKey(limit), trending)
	c.JSON(http.StatusOK, trending)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Create(services.ProductCreate{
		Title:       req.Title,
		Description: req.Description,
		Condition:   domain.ProductCondition(req.Condition),
		InitialBid:  req.InitialBid,
		Status:      domain.ProductStatus(req.Status),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		UserID:      req.UserID,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.cacheDelPattern(c.Request.Context(), trendingCachePfx+"*")
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.products.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := services.ProductPatch{
		Title:       req.Title,
		Description: req.Description,
		InitialBid:  req.InitialBid,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Images:      req.Images,
	}
	if req.Condition != nil {
		cond := domain.ProductCondition(*req.Condition)
		patch.Condition = &cond
	}
	if req.Status != nil {
		status := domain.ProductStatus(*req.Status)
		patch.Status = &status
	}

	product, err := h.products.Update(id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	h.cacheDelPattern(c.Request.Context(), trendingCachePfx+"*")
	c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	h.cacheDelPattern(c.Request.Context(), trendingCachePfx+"*")
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
