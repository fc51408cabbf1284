package http

import (
	"net/http"

	"github.com/arjunmnath/probidder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUserOrders(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	orders, err := h.orders.ListForUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.Create(c.Request.Context(), userID, services.OrderCreate{
		OrderDate:     req.OrderDate,
		OrderStatus:   req.OrderStatus,
		PaymentTime:   req.PaymentTime,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   req.TotalAmount,
		TransactionID: req.TransactionID,
		ProductID:     req.ProductID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	var req OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.Update(userID, orderID, services.OrderPatch{
		OrderStatus:   req.OrderStatus,
		PaymentTime:   req.PaymentTime,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   req.TotalAmount,
		TransactionID: req.TransactionID,
		ProductID:     req.ProductID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	orderID, ok := parseID(c, "orderId")
	if !ok {
		return
	}
	if err := h.orders.Delete(userID, orderID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
