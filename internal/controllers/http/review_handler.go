package http

import (
	"net/http"

	"github.com/arjunmnath/probidder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateReview(c *gin.Context) {
	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.Create(req.ProductID, req.UserID, req.Rating, req.Comment, req.ReviewDate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.Update(id, services.ReviewPatch{
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: req.ReviewDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.reviews.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

func (h *Handler) ListProductReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviews.ListByProduct(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
