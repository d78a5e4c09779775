package models

// ProductColor is one color variant of a product. The list is ordered; the
// first variant's image doubles as the product's primary image.
type ProductColor struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Image *string `json:"image"` // относительный путь, напр. "/uploads/abc123.jpg"
}

// Product — таблица products. Colors хранится JSON-колонкой; Image всегда
// повторяет Colors[0].Image (nil, если вариантов нет или первый без картинки).
type Product struct {
	Base
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Specifications string         `gorm:"type:text" json:"specifications"`
	Price          float64        `gorm:"type:decimal(12,2);not null" json:"price"`
	CategoryID     *uint          `gorm:"index" json:"category_id"`
	Image          *string        `json:"image"`
	Colors         []ProductColor `gorm:"type:json;serializer:json" json:"colors"`
}
