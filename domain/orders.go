package domain

import "time"

// Order statuses, advanced by admins from the dashboard.
const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderCode        string    `gorm:"column:order_code;unique;not null" json:"order_code"`
	CustomerName     string    `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerLastname string    `gorm:"column:customer_lastname;not null" json:"customer_lastname"`
	CustomerPhone    string    `gorm:"column:customer_phone;not null" json:"customer_phone"`
	CustomerDistrict string    `gorm:"column:customer_district;not null" json:"customer_district"`
	ProductCode      string    `gorm:"column:product_code;not null" json:"product_code"`
	ProductName      string    `gorm:"column:product_name;not null" json:"product_name"`
	ProductColor     string    `gorm:"column:product_color;not null" json:"product_color"`
	ProductPrice     float64   `gorm:"column:product_price;type:numeric;not null" json:"product_price"`
	Status           string    `gorm:"column:status;default:received" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
