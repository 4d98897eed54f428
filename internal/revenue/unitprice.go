package revenue

import (
	"sort"

	"staffplan/internal/domain"
)

// ApplicableUnitPrice resolves the unit price in effect for targetMonth
// ("YYYY-MM") from a member's price history. The history may arrive in any
// order; sorting is this function's responsibility. Returns 0 when no entry
// is effective at or before the target month, including for empty history.
func ApplicableUnitPrice(history []domain.UnitPriceEntry, targetMonth string) float64 {
	if len(history) == 0 {
		return 0
	}
	sorted := make([]domain.UnitPriceEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom < sorted[j].EffectiveFrom
	})

	amount := 0.0
	for _, entry := range sorted {
		if entry.EffectiveFrom > targetMonth {
			break
		}
		amount = entry.Amount
	}
	return amount
}
