package domain

import "time"

// Interaction actions appended by the storefront.
const (
	ActionView                = "view"
	ActionPurchase            = "purchase"
	ActionAddToCart           = "add_to_cart"
	ActionClickRecommendation = "click_recommendation"
)

// InteractionEvent is one row of the append-only session interaction log.
type InteractionEvent struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID   string    `gorm:"column:session_id;index;not null" json:"session_id"`
	ProductCode string    `gorm:"column:product_code;not null" json:"product_code"`
	Action      string    `gorm:"column:action;not null" json:"action"`
	CreatedAt   time.Time `json:"created_at"`
}

func (InteractionEvent) TableName() string {
	return "user_interactions"
}
