package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/models"
)

func strptr(s string) *string { return &s }

// Seed provisions the rows the storefront expects on a fresh database: the
// default admin account, the contact settings row, and a couple of sample
// categories and banners. Every insert is guarded by a lookup, so running it
// on every start is safe.
func Seed(db *gorm.DB) error {
	var admin models.AdminUser
	err := db.Where("username = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, herr := models.HashPassword("admin123")
		if herr != nil {
			return herr
		}
		err = db.Create(&models.AdminUser{Username: "admin", Password: hash}).Error
	}
	if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Setting{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		s := models.Setting{
			Instagram: "@iphonestore_official",
			Address:   "Jl. Sudirman No. 123, Jakarta Pusat",
			Phone:     "+62 812-3456-7890",
			Email:     "info@iphonestore.com",
		}
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}

	categories := []models.Category{
		{Name: "iPhone 15 Series", Description: "iPhone 15 terbaru dengan teknologi terdepan"},
		{Name: "iPhone 14 Series", Description: "iPhone 14 dengan performa handal"},
		{Name: "iPhone 13 Series", Description: "iPhone 13 dengan harga terjangkau"},
	}
	for _, c := range categories {
		var cnt int64
		if err := db.Model(&models.Category{}).Where("name = ?", c.Name).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		}
	}

	banners := []models.Banner{
		{
			Title:        "iPhone 15 Pro Max",
			Subtitle:     "Dapatkan iPhone 15 Pro Max dengan teknologi terdepan",
			ImageDesktop: strptr("/uploads/banner-1.webp"),
			ImageMobile:  strptr("/uploads/banner-1.webp"),
			LinkURL:      "/products",
			IsActive:     true,
			SortOrder:    1,
		},
		{
			Title:        "iPhone 15 Series",
			Subtitle:     "Koleksi iPhone 15 terbaru dengan harga terbaik",
			ImageDesktop: strptr("/uploads/banner-2.webp"),
			ImageMobile:  strptr("/uploads/banner-2.webp"),
			LinkURL:      "/products",
			IsActive:     true,
			SortOrder:    2,
		},
	}
	for _, b := range banners {
		var cnt int64
		if err := db.Model(&models.Banner{}).Where("title = ?", b.Title).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			if err := db.Create(&b).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
