package models

// Setting holds the storefront contact details shown in the footer. The
// table is expected to contain a single row, seeded at provisioning time.
type Setting struct {
	Base
	Instagram string `json:"instagram"`
	Address   string `gorm:"type:text" json:"address"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
	Email     string `json:"email"`
}
