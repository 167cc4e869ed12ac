package reports

import "rentfolio/server/internal/models"

// operationalStatuses is the fixed set of property statuses included in
// financial reporting. Pipeline stages like "Opportunity" or "Soft Offer"
// are excluded.
var operationalStatuses = map[string]bool{
	models.StatusOperational: true,
	models.StatusNeedsTenant: true,
	models.StatusSelling:     true,
	models.StatusRehab:       true,
	models.StatusClosed:      true,
}

// IsOperationalProperty reports whether a property status counts as
// operational for reporting purposes. Matching is exact and
// case-sensitive.
func IsOperationalProperty(status string) bool {
	return operationalStatuses[status]
}
