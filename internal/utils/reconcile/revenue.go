package reconcile

import (
	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MergeItems concatenates the item lists of every order, in encounter order.
// Downstream consumers need the merged list itself, not just its total: the
// board renders current items from it and KOTCount counts tickets across it.
func MergeItems(orders []domain.RestaurantOrder) []domain.LineItem {
	var merged []domain.LineItem
	for _, order := range orders {
		merged = append(merged, order.ItemList()...)
	}
	return merged
}

// Total sums the effective amount of every line item. No rounding happens
// here; rounding, if any, belongs at display or posting time.
func Total(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount())
	}
	return total
}

// KOTCount counts the distinct kotNumber values observed across a merged
// item list. Items without a ticket number do not count.
func KOTCount(items []domain.LineItem) int {
	seen := make(map[domain.FlexID]struct{})
	for _, item := range items {
		if item.KOTNumber.IsZero() {
			continue
		}
		seen[item.KOTNumber] = struct{}{}
	}
	return len(seen)
}

// OrdersRevenue is the one-call form used per unit: merge the item lists of
// the unit's active orders, then total them.
func OrdersRevenue(orders []domain.RestaurantOrder) (decimal.Decimal, []domain.LineItem) {
	merged := MergeItems(orders)
	return Total(merged), merged
}
