package models

// Category groups products (e.g. "iPhone 15 Series").
type Category struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
