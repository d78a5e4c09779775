package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/models"
)

type categoryBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories := make([]models.Category, 0)
	if err := h.db.Order("created_at DESC").Find(&categories).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var body categoryBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		jsonError(c, http.StatusBadRequest, "Category name is required")
		return
	}
	category := models.Category{Name: body.Name, Description: body.Description}
	if err := h.db.Create(&category).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body categoryBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		jsonError(c, http.StatusBadRequest, "Category name is required")
		return
	}
	var category models.Category
	err := h.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}
	category.Name = body.Name
	category.Description = body.Description
	if err := h.db.Save(&category).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res := h.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		h.dbError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		jsonError(c, http.StatusNotFound, "Category not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
