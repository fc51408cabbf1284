package http

import (
	"net/http"

	"github.com/arjunmnath/probidder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SendMessage(c *gin.Context) {
	var req MessageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messages.Send(services.MessageSend{
		SentTime:   req.SentTime,
		ReadTime:   req.ReadTime,
		Content:    req.Content,
		ProductID:  req.ProductID,
		SellerID:   req.SellerID,
		ReceiverID: req.ReceiverID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *Handler) GetMessage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	message, err := h.messages.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *Handler) UpdateMessage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req MessageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messages.Update(id, services.MessagePatch{
		ReadTime: req.ReadTime,
		Content:  req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.messages.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}

func (h *Handler) ListUserMessages(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	messages, err := h.messages.ListForUser(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
