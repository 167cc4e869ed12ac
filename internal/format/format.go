// Package format holds display formatting helpers shared by report
// surfaces.
package format

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Currency renders a dollar amount for display, e.g. "$1,234.56".
func Currency(amount float64) string {
	return money.NewFromFloat(amount, money.USD).Display()
}

// Percent renders a percentage with one decimal, e.g. "40.0%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
