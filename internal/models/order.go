package models

// OrderStatus — состояние заказа.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order states.
func ValidStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderCancelled:
		return true
	}
	return false
}

// Order — таблица orders. ProductName and ProductColor are snapshots taken
// at checkout time; they do not follow later edits to the product.
type Order struct {
	Base
	CustomerName    string      `gorm:"not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"type:varchar(20);not null" json:"customer_phone"`
	CustomerAddress string      `gorm:"type:text;not null" json:"customer_address"`
	ProductID       uint        `gorm:"index;not null" json:"product_id"`
	ProductName     string      `gorm:"not null" json:"product_name"`
	ProductColor    string      `gorm:"type:varchar(50)" json:"product_color"`
	Quantity        int         `gorm:"not null;default:1" json:"quantity"`
	TotalPrice      float64     `gorm:"type:decimal(12,2);not null" json:"total_price"`
	PaymentProof    *string     `json:"payment_proof"`
	Status          OrderStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
}
