package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/models"
)

type settingsBody struct {
	Instagram string `json:"instagram"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// GetSettings returns the storefront contact row. The table holds a single
// seeded row; the latest one wins if more ever appear.
func (h *Handler) GetSettings(c *gin.Context) {
	var setting models.Setting
	err := h.db.Order("id DESC").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var body settingsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var setting models.Setting
	err := h.db.Order("id DESC").First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		h.dbError(c, err)
		return
	}

	setting.Instagram = body.Instagram
	setting.Address = body.Address
	setting.Phone = body.Phone
	setting.Email = body.Email
	if err := h.db.Save(&setting).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
