package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PlaceBid(c *gin.Context) {
	var req BidCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bid, err := h.bids.PlaceBid(c.Request.Context(), req.ProductID, req.UserID, req.BidAmount, req.BidTime)
	if err != nil {
		writeError(c, err)
		return
	}

	// A new bid changes the trending ranking.
	h.cacheDelPattern(c.Request.Context(), trendingCachePfx+"*")

	c.JSON(http.StatusCreated, bid)
}

func (h *Handler) GetBid(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bid, err := h.bids.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bid)
}

func (h *Handler) DeleteBid(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.bids.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bid deleted"})
}

func (h *Handler) ListProductBids(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bids, err := h.bids.ListByProduct(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

func (h *Handler) ListUserBids(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bids, err := h.bids.ListByUser(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

func (h *Handler) HighestBid(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bid, err := h.bids.HighestBid(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bid)
}
