package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/models"
)

func (h *Handler) ListActiveBanners(c *gin.Context) {
	banners := make([]models.Banner, 0)
	err := h.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&banners).Error
	if err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *Handler) ListAllBanners(c *gin.Context) {
	banners := make([]models.Banner, 0)
	if err := h.db.Order("sort_order ASC, created_at DESC").Find(&banners).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

// saveBannerSlot stores an optional upload for one image slot (image_desktop
// or image_mobile). Missing file means the slot keeps its current value.
func (h *Handler) saveBannerSlot(c *gin.Context, field string) (*string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	path, err := h.store.SaveUploaded(c, file)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (h *Handler) CreateBanner(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		jsonError(c, http.StatusBadRequest, "Banner title is required")
		return
	}
	desktop, err := h.saveBannerSlot(c, "image_desktop")
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	mobile, err := h.saveBannerSlot(c, "image_mobile")
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	banner := models.Banner{
		Title:        title,
		Subtitle:     c.PostForm("subtitle"),
		ImageDesktop: desktop,
		ImageMobile:  mobile,
		LinkURL:      c.PostForm("link_url"),
		IsActive:     true,
		SortOrder:    cast.ToInt(c.PostForm("sort_order")),
	}
	if err := h.db.Create(&banner).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": banner.ID, "message": "Banner created successfully"})
}

// UpdateBanner applies the single-slot variant of the image rule to each of
// the desktop and mobile slots independently: a new upload replaces the slot
// and retires the previous file, no upload carries the slot forward.
func (h *Handler) UpdateBanner(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var banner models.Banner
	err := h.db.First(&banner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Banner not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}

	var stale []*string

	desktop, serr := h.saveBannerSlot(c, "image_desktop")
	if serr != nil {
		jsonError(c, http.StatusBadRequest, serr.Error())
		return
	}
	if desktop != nil {
		if banner.ImageDesktop != nil {
			stale = append(stale, banner.ImageDesktop)
		}
		banner.ImageDesktop = desktop
	}

	mobile, serr := h.saveBannerSlot(c, "image_mobile")
	if serr != nil {
		jsonError(c, http.StatusBadRequest, serr.Error())
		return
	}
	if mobile != nil {
		if banner.ImageMobile != nil {
			stale = append(stale, banner.ImageMobile)
		}
		banner.ImageMobile = mobile
	}

	banner.Title = c.PostForm("title")
	banner.Subtitle = c.PostForm("subtitle")
	banner.LinkURL = c.PostForm("link_url")
	banner.SortOrder = cast.ToInt(c.PostForm("sort_order"))
	banner.IsActive = cast.ToBool(c.PostForm("is_active"))

	// persist first, retire files after
	if err := h.db.Save(&banner).Error; err != nil {
		h.dbError(c, err)
		return
	}
	for _, p := range stale {
		h.store.Remove(p)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner updated successfully"})
}

func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var banner models.Banner
	err := h.db.First(&banner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Banner not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}
	if err := h.db.Delete(&banner).Error; err != nil {
		h.dbError(c, err)
		return
	}
	h.store.Remove(banner.ImageDesktop)
	h.store.Remove(banner.ImageMobile)
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
}
