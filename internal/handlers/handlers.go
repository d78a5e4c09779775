package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/auth"
	"github.com/cecepns/rnstore/internal/config"
	"github.com/cecepns/rnstore/internal/uploads"
)

// Handler carries the shared dependencies of every endpoint.
type Handler struct {
	db    *gorm.DB
	store *uploads.Store
	log   *zap.SugaredLogger
	cfg   config.Config
}

func New(db *gorm.DB, store *uploads.Store, log *zap.SugaredLogger, cfg config.Config) *Handler {
	return &Handler{db: db, store: store, log: log, cfg: cfg}
}

// RegisterRoutes mounts the REST surface under /api.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authed := auth.RequireToken(h.cfg.JWTSecret)

	api := r.Group("/api")

	api.POST("/auth/login", h.Login)
	api.GET("/auth/verify", authed, h.VerifyToken)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", authed, h.CreateCategory)
	api.PUT("/categories/:id", authed, h.UpdateCategory)
	api.DELETE("/categories/:id", authed, h.DeleteCategory)

	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products", authed, h.CreateProduct)
	api.PUT("/products/:id", authed, h.UpdateProduct)
	api.DELETE("/products/:id", authed, h.DeleteProduct)

	api.GET("/orders", authed, h.ListOrders)
	api.GET("/orders/:id", authed, h.GetOrder)
	api.POST("/orders", h.CreateOrder)
	api.PUT("/orders/:id/status", authed, h.UpdateOrderStatus)
	api.DELETE("/orders/:id", authed, h.DeleteOrder)

	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", authed, h.UpdateSettings)

	api.GET("/banners", h.ListActiveBanners)
	api.GET("/banners/all", authed, h.ListAllBanners)
	api.POST("/banners", authed, h.CreateBanner)
	api.PUT("/banners/:id", authed, h.UpdateBanner)
	api.DELETE("/banners/:id", authed, h.DeleteBanner)

	r.NoRoute(func(c *gin.Context) {
		jsonError(c, http.StatusNotFound, "Route not found")
	})
}

func jsonError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// dbError hides store details behind a generic message; the cause goes to
// the log only.
func (h *Handler) dbError(c *gin.Context, err error) {
	h.log.Errorw("database error", "path", c.FullPath(), "err", err)
	jsonError(c, http.StatusInternalServerError, "Database error")
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := cast.ToUintE(c.Param("id"))
	if err != nil || id == 0 {
		jsonError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
