package reports

import (
	"sort"
	"strings"
	"time"

	"rentfolio/server/internal/models"
)

// DefaultMonthWindow is the trailing window used when a caller does not
// configure one.
const DefaultMonthWindow = 6

const monthKeyFormat = "2006-01"

// PLGenerator buckets transactions into trailing calendar-month
// profit-and-loss reports. Now is injectable because the bucket set is
// a function of wall-clock time; it defaults to time.Now.
type PLGenerator struct {
	Now func() time.Time
}

func NewPLGenerator() *PLGenerator {
	return &PLGenerator{Now: time.Now}
}

func (g *PLGenerator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// pipelineStatuses are the property stages whose transactions are
// excluded from portfolio-level reports. Matching is case-insensitive;
// stored statuses vary in capitalization across imported data.
var pipelineStatuses = []string{
	models.StatusSoftOffer,
	models.StatusHardOffer,
	models.StatusOpportunity,
}

func isPipelineStatus(status string) bool {
	for _, s := range pipelineStatuses {
		if strings.EqualFold(status, s) {
			return true
		}
	}
	return false
}

// effectiveMonthKey reduces a transaction's effective date to its
// YYYY-MM bucket key.
func effectiveMonthKey(t *models.Transaction) string {
	d := t.EffectiveDate()
	if len(d) < len(monthKeyFormat) {
		return ""
	}
	return d[:len(monthKeyFormat)]
}

func newMonthBucket(key string) MonthlyPLData {
	return MonthlyPLData{
		Month:              key,
		IncomeByCategory:   map[string]float64{},
		ExpensesByCategory: map[string]float64{},
	}
}

// buildMonths returns monthCount buckets ending at the current calendar
// month, oldest first, plus an index from month key to position.
func (g *PLGenerator) buildMonths(monthCount int) ([]MonthlyPLData, map[string]int) {
	now := g.now()
	months := make([]MonthlyPLData, 0, monthCount)
	index := make(map[string]int, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		key := m.Format(monthKeyFormat)
		index[key] = len(months)
		months = append(months, newMonthBucket(key))
	}
	return months, index
}

// addToBucket applies one transaction to a bucket. Positive amounts are
// income, negative amounts expenses; expenses accumulate as absolute
// values.
func addToBucket(bucket *MonthlyPLData, t *models.Transaction) {
	switch {
	case t.Amount > 0:
		bucket.TotalIncome += t.Amount
		bucket.IncomeByCategory[t.Category] += t.Amount
	case t.Amount < 0:
		bucket.TotalExpenses += -t.Amount
		bucket.ExpensesByCategory[t.Category] += -t.Amount
	}
	bucket.NetIncome = bucket.TotalIncome - bucket.TotalExpenses
}

// includeTransaction applies the shared outflow filter: capital
// expenditures are excluded, capital income is not.
func includeTransaction(t *models.Transaction) bool {
	return !(t.Amount < 0 && t.ExpenseType == models.ExpenseTypeCapital)
}

func trailingAverage(months []MonthlyPLData, monthCount int) PLAverage {
	var avg PLAverage
	for _, m := range months {
		avg.TotalIncome += m.TotalIncome
		avg.TotalExpenses += m.TotalExpenses
		avg.NetIncome += m.NetIncome
	}
	// Always divide by the configured window length; empty months
	// dilute the average.
	n := float64(monthCount)
	avg.TotalIncome /= n
	avg.TotalExpenses /= n
	avg.NetIncome /= n
	return avg
}

// GeneratePropertyPLReport buckets one property's operating
// transactions into monthCount trailing months. Transactions whose
// effective month falls outside the window are dropped silently.
func (g *PLGenerator) GeneratePropertyPLReport(transactions []models.Transaction, propertyID, propertyAddress string, monthCount int) PropertyPLReport {
	if monthCount <= 0 {
		monthCount = DefaultMonthWindow
	}
	months, index := g.buildMonths(monthCount)

	for i := range transactions {
		t := &transactions[i]
		if t.PropertyID != propertyID {
			continue
		}
		if !includeTransaction(t) {
			continue
		}
		idx, ok := index[effectiveMonthKey(t)]
		if !ok {
			continue
		}
		addToBucket(&months[idx], t)
	}

	return PropertyPLReport{
		PropertyID:      propertyID,
		PropertyAddress: propertyAddress,
		Months:          months,
		SixMonthAverage: trailingAverage(months, monthCount),
	}
}

// GeneratePortfolioPLReport buckets transactions across the whole
// portfolio. Transactions tied to archived properties or to pipeline
// stages (soft offer, hard offer, opportunity) are excluded;
// business-level transactions with no property are always included.
// The report also carries the most recent fully elapsed month as its
// own bucket, independent of the rolling window.
func (g *PLGenerator) GeneratePortfolioPLReport(transactions []models.Transaction, properties []models.Property, monthCount int) PortfolioPLReport {
	if monthCount <= 0 {
		monthCount = DefaultMonthWindow
	}
	months, index := g.buildMonths(monthCount)

	excluded := make(map[string]bool, len(properties))
	for _, p := range properties {
		if p.Archived || isPipelineStatus(p.Status) {
			excluded[p.ID] = true
		}
	}

	now := g.now()
	lastFull := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	lastFullKey := lastFull.Format(monthKeyFormat)
	lastFullMonth := newMonthBucket(lastFullKey)

	for i := range transactions {
		t := &transactions[i]
		if t.PropertyID != "" && excluded[t.PropertyID] {
			continue
		}
		if !includeTransaction(t) {
			continue
		}
		key := effectiveMonthKey(t)
		if key == lastFullKey {
			addToBucket(&lastFullMonth, t)
		}
		idx, ok := index[key]
		if !ok {
			continue
		}
		addToBucket(&months[idx], t)
	}

	return PortfolioPLReport{
		Months:          months,
		SixMonthAverage: trailingAverage(months, monthCount),
		LastFullMonth:   lastFullMonth,
	}
}

// IncomeCategories returns the sorted union of income categories seen
// across the report's months.
func IncomeCategories(months []MonthlyPLData) []string {
	return categoryUnion(months, func(m MonthlyPLData) map[string]float64 {
		return m.IncomeByCategory
	})
}

// ExpenseCategories returns the sorted union of expense categories seen
// across the report's months.
func ExpenseCategories(months []MonthlyPLData) []string {
	return categoryUnion(months, func(m MonthlyPLData) map[string]float64 {
		return m.ExpensesByCategory
	})
}

func categoryUnion(months []MonthlyPLData, pick func(MonthlyPLData) map[string]float64) []string {
	seen := map[string]bool{}
	for _, m := range months {
		for category := range pick(m) {
			seen[category] = true
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
