// Package pricing implements the platform's per-kilogram commission model.
// All amounts are in AED and computed as exact decimals, so the admin and
// carrier shares always add up to the total.
package pricing

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	PricePerKg         = decimal.NewFromInt(40)
	AdminFeePerKg      = decimal.NewFromInt(19)
	CarrierPayoutPerKg = PricePerKg.Sub(AdminFeePerKg)
)

// weight converts kg to a decimal. Non-finite values count as zero.
func weight(kg float64) decimal.Decimal {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(kg)
}

// AdminShare is the platform's cut of Total(kg).
func AdminShare(kg float64) decimal.Decimal { return weight(kg).Mul(AdminFeePerKg) }

// CarrierShare is the carrier's cut of Total(kg).
func CarrierShare(kg float64) decimal.Decimal { return weight(kg).Mul(CarrierPayoutPerKg) }

// Total is what the seeker pays for kg: the admin share plus the carrier share.
func Total(kg float64) decimal.Decimal { return AdminShare(kg).Add(CarrierShare(kg)) }

// AdminRevenue sums the admin share over a set of deal weights.
func AdminRevenue(kgs ...float64) decimal.Decimal {
	sum := decimal.Zero
	for _, kg := range kgs {
		sum = sum.Add(AdminShare(kg))
	}
	return sum
}

// Amount converts a decimal amount to the float64 stored in documents.
func Amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// FormatAED renders an amount for display, e.g. "AED 1,400.00".
func FormatAED(amount decimal.Decimal) string {
	return "AED " + humanize.FormatFloat("#,###.##", amount.Round(2).InexactFloat64())
}
