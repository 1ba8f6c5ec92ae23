package pricing

import (
	"github.com/havncube/billing-service/internal/domain/entities"
	"github.com/havncube/billing-service/internal/domain/measurement"
)

// Dims extracts the measured rectangle from a line item.
func Dims(it entities.LineItem) measurement.Dimensions {
	return measurement.Dimensions{
		LengthFeet:   it.LengthFeet,
		LengthInches: it.LengthInches,
		WidthFeet:    it.WidthFeet,
		WidthInches:  it.WidthInches,
	}
}

// ResolveQuantity returns the billable quantity for a line item. SQFT items
// with measured dimensions derive it from the rectangle; every other item
// keeps the caller-supplied quantity.
func ResolveQuantity(it entities.LineItem) float64 {
	if it.Unit == entities.UnitSQFT {
		if d := Dims(it); d.IsSet() {
			return d.Area()
		}
	}
	return it.Quantity
}

// Reprice recomputes every derived money field on the estimate in place.
//
// Per item: dimensioned SQFT entries get quantity = area and amount =
// quantity * rate; NOS and flat SQFT entries keep the caller-supplied
// quantity and amount untouched. Estimate-level subtotal, tax and total are
// always recomputed from the resulting amounts, discarding whatever the
// caller sent for those fields.
func Reprice(e *entities.Estimate) {
	subtotal := 0.0
	for i := range e.LineItems {
		it := &e.LineItems[i]
		if it.Unit == entities.UnitSQFT {
			if d := Dims(*it); d.IsSet() {
				it.Quantity = d.Area()
				it.Amount = it.Quantity * it.Rate
			}
		}
		subtotal += it.Amount
	}
	e.Subtotal = subtotal
	e.TaxAmount = subtotal * e.TaxRate / 100
	e.TotalAmount = subtotal + e.TaxAmount
}
