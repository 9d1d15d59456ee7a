package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LineItem is a single priced entry on an order or KOT. Upstream payloads
// spell the price field either "price" or "Price" and omit quantity when it
// is one; UnmarshalJSON folds both quirks into a normal struct.
type LineItem struct {
	Name      string
	Price     decimal.Decimal
	Quantity  int64
	KOTNumber FlexID
}

func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name       string           `json:"name"`
		Price      *decimal.Decimal `json:"price"`
		PriceUpper *decimal.Decimal `json:"Price"`
		Quantity   *int64           `json:"quantity"`
		KOTNumber  FlexID           `json:"kotNumber"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// Effective unit price is price ?? Price ?? 0.
	price := decimal.Zero
	switch {
	case raw.Price != nil:
		price = *raw.Price
	case raw.PriceUpper != nil:
		price = *raw.PriceUpper
	}

	// Quantity defaults to 1 only when absent; an explicit zero stays zero.
	qty := int64(1)
	if raw.Quantity != nil {
		qty = *raw.Quantity
	}

	*li = LineItem{
		Name:      raw.Name,
		Price:     price,
		Quantity:  qty,
		KOTNumber: raw.KOTNumber,
	}
	return nil
}

func (li LineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name      string          `json:"name,omitempty"`
		Price     decimal.Decimal `json:"price"`
		Quantity  int64           `json:"quantity"`
		KOTNumber FlexID          `json:"kotNumber,omitempty"`
	}{li.Name, li.Price, li.Quantity, li.KOTNumber})
}

// Amount is the effective line amount: unit price times quantity.
func (li LineItem) Amount() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(li.Quantity))
}
