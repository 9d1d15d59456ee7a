package reconcile_test

import (
	"encoding/json"
	"testing"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	"github.com/hotelops/frontdesk_backend/internal/utils/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotal_TwoOrdersWithMixedPriceCasing(t *testing.T) {
	// Two active orders on one table: [{price:100,quantity:2}] and
	// [{Price:50,quantity:1}] must total 250.
	var first, second domain.RestaurantOrder
	require.NoError(t, json.Unmarshal(
		[]byte(`{"orderId":"o1","status":"pending","items":[{"price":100,"quantity":2}]}`), &first))
	require.NoError(t, json.Unmarshal(
		[]byte(`{"orderId":"o2","status":"pending","items":[{"Price":50,"quantity":1}]}`), &second))

	total, merged := reconcile.OrdersRevenue([]domain.RestaurantOrder{first, second})
	assert.True(t, decimal.NewFromInt(250).Equal(total), "got %s", total)
	assert.Len(t, merged, 2, "item lists are concatenated, not just totalled")
}

func TestLineItem_Defaults(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		amount  string
	}{
		{"quantity defaults to 1", `{"price":80}`, "80"},
		{"missing price is zero", `{"quantity":3}`, "0"},
		{"explicit zero quantity stays zero", `{"price":80,"quantity":0}`, "0"},
		{"lowercase price wins when both present", `{"price":10,"Price":99}`, "10"},
		{"decimal prices kept exact", `{"price":"10.05","quantity":3}`, "30.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item domain.LineItem
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &item))
			want, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.True(t, want.Equal(item.Amount()), "want %s got %s", want, item.Amount())
		})
	}
}

func TestMergeItems_KOTItemsTakePriorityOverItems(t *testing.T) {
	var order domain.RestaurantOrder
	payload := `{
		"orderId": "o1",
		"status": "pending",
		"allKotItems": [{"price": 40, "kotNumber": 7}],
		"items": [{"price": 999}]
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &order))

	merged := reconcile.MergeItems([]domain.RestaurantOrder{order})
	require.Len(t, merged, 1)
	assert.True(t, decimal.NewFromInt(40).Equal(merged[0].Price))
}

func TestMergeItems_EmptyKOTListDoesNotFallThrough(t *testing.T) {
	var order domain.RestaurantOrder
	payload := `{"orderId":"o1","status":"pending","allKotItems":[],"items":[{"price":999}]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &order))

	assert.Empty(t, reconcile.MergeItems([]domain.RestaurantOrder{order}),
		"a present-but-empty allKotItems must not fall through to items")
}

func TestKOTCount_DistinctTickets(t *testing.T) {
	var first, second domain.RestaurantOrder
	require.NoError(t, json.Unmarshal([]byte(`{
		"orderId": "o1", "status": "pending",
		"allKotItems": [
			{"price": 10, "kotNumber": 1},
			{"price": 20, "kotNumber": 1},
			{"price": 30, "kotNumber": "2"}
		]
	}`), &first))
	require.NoError(t, json.Unmarshal([]byte(`{
		"orderId": "o2", "status": "pending",
		"allKotItems": [
			{"price": 5, "kotNumber": 2},
			{"price": 5}
		]
	}`), &second))

	merged := reconcile.MergeItems([]domain.RestaurantOrder{first, second})
	// Tickets 1 and 2; the numeric 2 and string "2" are the same ticket, and
	// the unticketed item does not count.
	assert.Equal(t, 2, reconcile.KOTCount(merged))
}

func TestTotal_NoRoundingDuringSummation(t *testing.T) {
	items := make([]domain.LineItem, 0, 3)
	for i := 0; i < 3; i++ {
		price, err := decimal.NewFromString("0.1")
		require.NoError(t, err)
		items = append(items, domain.LineItem{Price: price, Quantity: 1})
	}
	assert.Equal(t, "0.3", reconcile.Total(items).String())
}
