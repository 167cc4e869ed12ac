package reports

import "rentfolio/server/internal/models"

// CalculatePropertyAssets computes the value and equity position of a
// single property. Unlike the cash-flow calculator it does not zero out
// non-operational properties; the operational flag is carried through
// for display only.
func CalculatePropertyAssets(p models.Property) (PropertyAssetData, error) {
	if err := checkFinite("current_house_value", p.CurrentHouseValue); err != nil {
		return PropertyAssetData{}, err
	}
	if err := checkFinite("arv", p.ARV); err != nil {
		return PropertyAssetData{}, err
	}
	if err := checkFinite("current_loan_value", derefOrZero(p.CurrentLoanValue)); err != nil {
		return PropertyAssetData{}, err
	}

	// Fall back to the after-repair value when no live valuation exists.
	currentValue := p.CurrentHouseValue
	if currentValue <= 0 {
		currentValue = p.ARV
	}

	loanValue := 0.0
	if p.CurrentLoanValue != nil && *p.CurrentLoanValue > 0 {
		loanValue = *p.CurrentLoanValue
	}

	equity := currentValue - loanValue
	equityPercent := 0.0
	if currentValue > 0 {
		equityPercent = equity / currentValue * 100
	}

	return PropertyAssetData{
		PropertyID:    p.ID,
		Address:       p.Address,
		Status:        p.Status,
		IsOperational: IsOperationalProperty(p.Status),
		CurrentValue:  currentValue,
		LoanValue:     loanValue,
		Equity:        equity,
		EquityPercent: equityPercent,
	}, nil
}
