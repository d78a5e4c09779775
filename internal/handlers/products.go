package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/models"
)

// productRow is a product joined with its category name.
type productRow struct {
	models.Product
	CategoryName *string `json:"category_name"`
}

func (h *Handler) productQuery() *gorm.DB {
	return h.db.Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = products.category_id")
}

func (h *Handler) ListProducts(c *gin.Context) {
	rows := make([]productRow, 0)
	if err := h.productQuery().Order("products.created_at DESC").Scan(&rows).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var row productRow
	err := h.productQuery().Where("products.id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// productForm is the multipart body shared by create and update.
type productForm struct {
	Name           string
	Description    string
	Specifications string
	Price          float64
	CategoryID     *uint
	Colors         []colorInput
}

// bindProductForm validates the multipart fields. It performs no mutation,
// so a rejected request leaves both stores untouched.
func (h *Handler) bindProductForm(c *gin.Context) (*productForm, bool) {
	f := &productForm{
		Name:           c.PostForm("name"),
		Description:    c.PostForm("description"),
		Specifications: c.PostForm("specifications"),
	}
	if f.Name == "" {
		jsonError(c, http.StatusBadRequest, "Product name is required")
		return nil, false
	}
	price, err := cast.ToFloat64E(c.PostForm("price"))
	if err != nil || price < 0 {
		jsonError(c, http.StatusBadRequest, "Invalid price")
		return nil, false
	}
	f.Price = price
	if v := c.PostForm("category_id"); v != "" {
		id, err := cast.ToUintE(v)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid category")
			return nil, false
		}
		f.CategoryID = &id
	}
	colors, err := parseColors(c.PostForm("colors"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid colors payload")
		return nil, false
	}
	f.Colors = colors
	return f, true
}

// saveColorUploads stores the per-variant files (fields color_image_0,
// color_image_1, ...) and returns position → public path.
func (h *Handler) saveColorUploads(c *gin.Context, n int) (map[int]string, error) {
	uploaded := map[int]string{}
	form, err := c.MultipartForm()
	if err != nil {
		return uploaded, nil
	}
	for i := 0; i < n; i++ {
		files := form.File[fmt.Sprintf("color_image_%d", i)]
		if len(files) == 0 {
			continue
		}
		path, err := h.store.SaveUploaded(c, files[0])
		if err != nil {
			return nil, err
		}
		uploaded[i] = path
	}
	return uploaded, nil
}

func (h *Handler) CreateProduct(c *gin.Context) {
	form, ok := h.bindProductForm(c)
	if !ok {
		return
	}
	uploaded, err := h.saveColorUploads(c, len(form.Colors))
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	colors, _ := resolveColors(form.Colors, nil, uploaded)

	product := models.Product{
		Name:           form.Name,
		Description:    form.Description,
		Specifications: form.Specifications,
		Price:          form.Price,
		CategoryID:     form.CategoryID,
		Image:          primaryImage(colors),
		Colors:         colors,
	}
	if err := h.db.Create(&product).Error; err != nil {
		h.dbError(c, err)
		return
	}
	c.JSON(http.StatusOK, createdProduct{Product: product, Message: "Product created successfully"})
}

// createdProduct echoes the stored row so the client sees the resolved
// variant paths without a follow-up fetch.
type createdProduct struct {
	models.Product
	Message string `json:"message"`
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var product models.Product
	err := h.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}

	form, ok := h.bindProductForm(c)
	if !ok {
		return
	}
	uploaded, err := h.saveColorUploads(c, len(form.Colors))
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	colors, stale := resolveColors(form.Colors, product.Colors, uploaded)
	image := primaryImage(colors)
	// a changed primary also retires the old one; Remove tolerates the
	// overlap with a per-variant replacement of the same file
	if product.Image != nil && !sameImage(image, product.Image) {
		stale = append(stale, product.Image)
	}

	product.Name = form.Name
	product.Description = form.Description
	product.Specifications = form.Specifications
	product.Price = form.Price
	product.CategoryID = form.CategoryID
	product.Image = image
	product.Colors = colors

	// persist first: a failed update must leave the old files on disk
	if err := h.db.Save(&product).Error; err != nil {
		h.dbError(c, err)
		return
	}
	for _, p := range stale {
		h.store.Remove(p)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var product models.Product
	err := h.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		jsonError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.dbError(c, err)
		return
	}
	if err := h.db.Delete(&product).Error; err != nil {
		h.dbError(c, err)
		return
	}
	h.store.Remove(product.Image)
	for _, color := range product.Colors {
		h.store.Remove(color.Image)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
