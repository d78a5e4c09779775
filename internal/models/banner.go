package models

// Banner — таблица banners. Desktop and mobile images are independent slots;
// either may be empty.
type Banner struct {
	Base
	Title        string  `gorm:"not null" json:"title"`
	Subtitle     string  `gorm:"type:text" json:"subtitle"`
	ImageDesktop *string `json:"image_desktop"`
	ImageMobile  *string `json:"image_mobile"`
	LinkURL      string  `gorm:"type:varchar(500)" json:"link_url"`
	IsActive     bool    `gorm:"not null;default:true" json:"is_active"`
	SortOrder    int     `gorm:"not null;default:0" json:"sort_order"`
}
