package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ConsumptionLog is one row of the feature-usage accounting sink. Writes are
// fire-and-forget; nothing in the serving path reads this table.
type ConsumptionLog struct {
	ID            uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Feature       string            `gorm:"column:feature;not null" json:"feature"`
	OperationType string            `gorm:"column:operation_type;not null" json:"operation_type"`
	TokensUsed    int               `gorm:"column:tokens_used;default:0" json:"tokens_used"`
	APICalls      int               `gorm:"column:api_calls;default:0" json:"api_calls"`
	CostUSD       float64           `gorm:"column:cost_usd;type:numeric;default:0" json:"cost_usd"`
	Metadata      datatypes.JSONMap `gorm:"column:metadata" json:"metadata"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (ConsumptionLog) TableName() string {
	return "ai_consumption_logs"
}
