package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/auth"
	"github.com/cecepns/rnstore/internal/models"
)

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies an admin account and issues a bearer token. Unknown user
// and wrong password are indistinguishable to the caller.
func (h *Handler) Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.AdminUser
	err := h.db.Where("username = ?", body.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !models.CheckPassword(user.Password, body.Password)) {
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}

	token, err := auth.Sign(h.cfg.JWTSecret, &user, h.cfg.TokenTTL)
	if err != nil {
		h.log.Errorw("failed to sign token", "err", err)
		jsonError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username},
	})
}

func (h *Handler) VerifyToken(c *gin.Context) {
	claims := auth.CurrentUser(c)
	if claims == nil {
		jsonError(c, http.StatusUnauthorized, "Access token required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  gin.H{"id": claims.UserID, "username": claims.Username},
	})
}
