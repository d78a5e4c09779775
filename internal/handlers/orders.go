package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/models"
)

// ListOrders returns a page of orders, newest first, with the pagination
// envelope. The count and the window are two independent reads; an order
// inserted between them can skew the totals by one, which is tolerated.
func (h *Handler) ListOrders(c *gin.Context) {
	page, limit := pageQuery(c)

	var total int64
	if err := h.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		h.dbError(c, err)
		return
	}

	orders := make([]models.Order, 0)
	err := h.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		h.dbError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       orders,
		"pagination": paginate(page, limit, total),
	})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var order models.Order
	err := h.db.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder records a checkout. Product name and color are stored as a
// snapshot; later edits to the product do not touch existing orders.
func (h *Handler) CreateOrder(c *gin.Context) {
	name := c.PostForm("customer_name")
	phone := c.PostForm("customer_phone")
	address := c.PostForm("customer_address")
	if name == "" || phone == "" || address == "" {
		jsonError(c, http.StatusBadRequest, "Customer name, phone and address are required")
		return
	}
	productID, err := cast.ToUintE(c.PostForm("product_id"))
	if err != nil || productID == 0 {
		jsonError(c, http.StatusBadRequest, "Invalid product")
		return
	}
	quantity := cast.ToInt(c.PostForm("quantity"))
	if quantity < 1 {
		quantity = 1
	}
	total, err := cast.ToFloat64E(c.PostForm("total_price"))
	if err != nil || total < 0 {
		jsonError(c, http.StatusBadRequest, "Invalid total price")
		return
	}

	var proof *string
	if file, ferr := c.FormFile("payment_proof"); ferr == nil {
		path, serr := h.store.SaveUploaded(c, file)
		if serr != nil {
			jsonError(c, http.StatusBadRequest, serr.Error())
			return
		}
		proof = &path
	}

	order := models.Order{
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		ProductID:       productID,
		ProductName:     c.PostForm("product_name"),
		ProductColor:    c.PostForm("product_color"),
		Quantity:        quantity,
		TotalPrice:      total,
		PaymentProof:    proof,
		Status:          models.OrderPending,
	}
	if err := h.db.Create(&order).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": order.ID, "message": "Order created successfully"})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !models.ValidStatus(body.Status) {
		jsonError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	var order models.Order
	err := h.db.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}
	if err := h.db.Model(&order).Update("status", body.Status).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var order models.Order
	err := h.db.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}
	if err := h.db.Delete(&order).Error; err != nil {
		h.dbError(c, err)
		return
	}
	h.store.Remove(order.PaymentProof)
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
