package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Charge is a validated transaction ready for persistence. Records only
// reach this state after passing every validation rule; anything else
// becomes an Alert.
type Charge struct {
	ChargeID  string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at"`
}
