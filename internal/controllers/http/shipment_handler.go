package http

import (
	"net/http"

	"github.com/arjunmnath/probidder-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListShipments(c *gin.Context) {
	shipments, err := h.shipments.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipments)
}

func (h *Handler) CreateShipment(c *gin.Context) {
	var req ShipmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := h.shipments.Create(services.ShipmentCreate{
		ShippingMethod:        req.ShippingMethod,
		TrackingNumber:        req.TrackingNumber,
		CarrierName:           req.CarrierName,
		ShippingStatus:        req.ShippingStatus,
		ShippingCost:          req.ShippingCost,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		HouseNo:               req.HouseNo,
		Street:                req.Street,
		City:                  req.City,
		Pincode:               req.Pincode,
		OrderID:               req.OrderID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shipment)
}

func (h *Handler) GetShipment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	shipment, err := h.shipments.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (h *Handler) UpdateShipment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ShipmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := h.shipments.Update(id, services.ShipmentPatch{
		ShippingMethod:        req.ShippingMethod,
		TrackingNumber:        req.TrackingNumber,
		CarrierName:           req.CarrierName,
		ShippingStatus:        req.ShippingStatus,
		ShippingCost:          req.ShippingCost,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		HouseNo:               req.HouseNo,
		Street:                req.Street,
		City:                  req.City,
		Pincode:               req.Pincode,
		OrderID:               req.OrderID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (h *Handler) DeleteShipment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.shipments.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shipment deleted"})
}
