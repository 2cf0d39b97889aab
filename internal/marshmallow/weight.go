package marshmallow

import (
	"strconv"
	"time"
)

// CanAllocateAt reports whether the cooldown since the last allocation has strictly elapsed
func CanAllocateAt(lastAllocationAt, now time.Time, cooldown time.Duration) bool {
	return now.Sub(lastAllocationAt) > cooldown
}

// IsNewAt reports whether an account joined less than maturity ago
func IsNewAt(joinedAt, now time.Time, maturity time.Duration) bool {
	return now.Sub(joinedAt) < maturity
}

// ComputeWeight returns the adjusted weight of a new allocation.
// q is the number of allocations the account made in the lookback window; zero counts as one.
func ComputeWeight(q int64, lookbackDays int, multiplier float64) float64 {
	if q < 1 {
		q = 1
	}
	period := float64(lookbackDays) / float64(q)
	return period * multiplier
}

// Label returns the magnitude label shown to the allocating user
func Label(weight float64) string {
	switch {
	case weight > 100:
		return "a shipment"
	case weight > 50:
		return "several bags"
	case weight > 10:
		return "a grip"
	case weight > 5:
		return "a handful"
	case weight > 1:
		return "a few"
	case weight == 1:
		return "one"
	case weight > 0.05:
		return "a piece"
	default:
		return "a spec"
	}
}

// FormatWeight renders a weight with two decimal places
func FormatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', 2, 64)
}
