package reports

import (
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"rentfolio/server/internal/models"
)

// DefaultCacheTTL is how long a cached report stays valid when the
// property set is unchanged.
const DefaultCacheTTL = 5 * time.Minute

const (
	cashFlowSlot = "cashflow"
	assetSlot    = "assets"
)

type cachedCashFlow struct {
	data *PortfolioCashFlowReport
	hash string
}

type cachedAssets struct {
	data *PortfolioAssetReport
	hash string
}

// ReportCache memoizes the two portfolio reports for a short window,
// keyed by a content hash of the input property set. An entry is reused
// only while its hash matches and its TTL has not elapsed.
type ReportCache struct {
	store *gocache.Cache
}

// NewReportCache returns a cache with the given TTL, falling back to
// DefaultCacheTTL for non-positive values.
func NewReportCache(ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ReportCache{store: gocache.New(ttl, 2*ttl)}
}

// PropertiesHash builds the cache key for a property set. It folds in
// id, address, status, actual rent, current house value and current
// loan value per property. Monthly expenses, potential rent and unit
// data are deliberately left out, so changes to those fields alone do
// not invalidate a cached report within the TTL window.
func PropertiesHash(properties []models.Property) string {
	var b strings.Builder
	for _, p := range properties {
		loan := ""
		if p.CurrentLoanValue != nil {
			loan = strconv.FormatFloat(*p.CurrentLoanValue, 'f', -1, 64)
		}
		b.WriteString(p.ID)
		b.WriteByte('|')
		b.WriteString(p.Address)
		b.WriteByte('|')
		b.WriteString(p.Status)
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(p.ActualRent, 'f', -1, 64))
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(p.CurrentHouseValue, 'f', -1, 64))
		b.WriteByte('|')
		b.WriteString(loan)
		b.WriteByte(';')
	}
	return b.String()
}

// GetCashFlowReport returns the cached cash-flow report when the
// property hash still matches, otherwise recomputes and stores the
// fresh result.
func (c *ReportCache) GetCashFlowReport(properties []models.Property) CashFlowResult {
	hash := PropertiesHash(properties)
	if v, ok := c.store.Get(cashFlowSlot); ok {
		if entry, ok := v.(cachedCashFlow); ok && entry.hash == hash {
			return CashFlowResult{Data: entry.data}
		}
	}

	result := AggregateCashFlowData(properties)
	if result.Data != nil {
		c.store.Set(cashFlowSlot, cachedCashFlow{data: result.Data, hash: hash}, gocache.DefaultExpiration)
	}
	return result
}

// GetAssetReport is the asset-report counterpart of GetCashFlowReport.
func (c *ReportCache) GetAssetReport(properties []models.Property) AssetResult {
	hash := PropertiesHash(properties)
	if v, ok := c.store.Get(assetSlot); ok {
		if entry, ok := v.(cachedAssets); ok && entry.hash == hash {
			return AssetResult{Data: entry.data}
		}
	}

	result := AggregateAssetData(properties)
	if result.Data != nil {
		c.store.Set(assetSlot, cachedAssets{data: result.Data, hash: hash}, gocache.DefaultExpiration)
	}
	return result
}

// Clear drops both report slots unconditionally. Used by the manual
// refresh action.
func (c *ReportCache) Clear() {
	c.store.Flush()
}
