package models

import "time"

// Transaction expense types.
const (
	ExpenseTypeOperating = "Operating"
	ExpenseTypeCapital   = "Capital"
)

// Transaction is a single financial event. Amount is signed: positive
// amounts are income, negative amounts are expenses. An empty PropertyID
// marks a business-level transaction not tied to any property.
type Transaction struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Date         string    `json:"date"` // ISO date, YYYY-MM-DD
	Amount       float64   `json:"amount"`
	Category     string    `json:"category"`
	PropertyID   string    `json:"property_id,omitempty" gorm:"index"`
	ExpenseType  string    `json:"expense_type"`
	OverrideDate string    `json:"override_date,omitempty"` // reassigns the reporting month
	CreatedAt    time.Time `json:"created_at"`
}

// EffectiveDate returns the override date when set, otherwise the
// recorded date. It decides which reporting month the transaction
// falls into.
func (t *Transaction) EffectiveDate() string {
	if t.OverrideDate != "" {
		return t.OverrideDate
	}
	return t.Date
}
