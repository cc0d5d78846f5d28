// Package pricing resolves price tiers to amounts and formats them for
// display. Amounts are currency-agnostic units rendered with a dollar sign.
package pricing

import "fmt"

// priceTiers maps the four known tiers to their fixed amounts.
var priceTiers = map[int]float64{
	1: 50,
	2: 75,
	3: 100,
	4: 150,
}

// feeRate is the fixed service fee applied on top of the subtotal.
const feeRate = 0.10

// PriceForTier returns the amount for a tier. Tiers outside 1-4 resolve to
// 50; the fallback is the documented default, not an error.
func PriceForTier(tier int) float64 {
	if price, ok := priceTiers[tier]; ok {
		return price
	}
	return 50
}

// FormatAmount renders an amount with the currency symbol and exactly two
// decimal places.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Quote is the running price summary for a set of selected seats.
type Quote struct {
	Subtotal float64
	Fee      float64
	Total    float64
}

// QuoteFor sums the tier prices and applies the fixed service fee.
func QuoteFor(tiers []int) Quote {
	var subtotal float64
	for _, tier := range tiers {
		subtotal += PriceForTier(tier)
	}
	return Quote{
		Subtotal: subtotal,
		Fee:      subtotal * feeRate,
		Total:    subtotal * (1 + feeRate),
	}
}
