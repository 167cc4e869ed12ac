package models

import "time"

// Property pipeline and lifecycle statuses.
const (
	StatusOpportunity = "Opportunity"
	StatusSoftOffer   = "Soft Offer"
	StatusHardOffer   = "Hard Offer"
	StatusRehab       = "Rehab"
	StatusOperational = "Operational"
	StatusNeedsTenant = "Needs Tenant"
	StatusSelling     = "Selling"
	StatusClosed      = "Closed"
)

// Unit statuses.
const (
	UnitStatusOperational = "Operational"
	UnitStatusBehindRent  = "Behind On Rent"
	UnitStatusVacant      = "Vacant"
)

type Property struct {
	ID                string           `json:"id" gorm:"primaryKey"`
	Address           string           `json:"address"`
	Status            string           `json:"status" gorm:"index"`
	Archived          bool             `json:"archived" gorm:"index"`
	ActualRent        float64          `json:"actual_rent"`
	PotentialRent     float64          `json:"potential_rent"`
	CurrentHouseValue float64          `json:"current_house_value"`
	ARV               float64          `json:"arv"`
	CurrentLoanValue  *float64         `json:"current_loan_value"`
	OfferPrice        float64          `json:"offer_price"`
	RehabCosts        float64          `json:"rehab_costs"`
	Units             int              `json:"units"`
	MonthlyExpenses   *MonthlyExpenses `json:"monthly_expenses" gorm:"foreignKey:PropertyID"`
	PropertyUnits     []PropertyUnit   `json:"property_units" gorm:"foreignKey:PropertyID"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// MonthlyExpenses is the recurring expense breakdown for a property.
// Total is stored as entered, not derived from the other fields.
type MonthlyExpenses struct {
	ID                 int64   `json:"-" gorm:"primaryKey;autoIncrement"`
	PropertyID         string  `json:"-" gorm:"index"`
	Mortgage           float64 `json:"mortgage"`
	PropertyTax        float64 `json:"property_tax"`
	Insurance          float64 `json:"insurance"`
	PropertyManagement float64 `json:"property_management"`
	Utilities          float64 `json:"utilities"`
	Vacancy            float64 `json:"vacancy"`
	CapEx              float64 `json:"cap_ex"`
	Other              float64 `json:"other"`
	Total              float64 `json:"total"`
}

type PropertyUnit struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	PropertyID string `json:"-" gorm:"index"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Position   int    `json:"-" gorm:"index"`
}
