package request

import (
	"github.com/havncube/billing-service/internal/domain/entities"
)

// defaultTaxRate applies when the payload omits tax_rate entirely (GST).
const defaultTaxRate = 18.0

type LineItemRequest struct {
	ID           string  `json:"id"`
	Particulars  string  `json:"particulars" binding:"required"`
	LengthFeet   int     `json:"length_feet"`
	LengthInches int     `json:"length_inches"`
	WidthFeet    int     `json:"width_feet"`
	WidthInches  int     `json:"width_inches"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Rate         float64 `json:"rate"`
	Amount       float64 `json:"amount"`
}

// EstimateRequest is the wire payload for create and full-replacement update.
// The derived money fields (subtotal, tax_amount, total_amount) are accepted
// for wire compatibility but always recomputed server-side.
type EstimateRequest struct {
	ClientName     string            `json:"client_name" binding:"required"`
	ClientAddress  string            `json:"client_address"`
	ClientPhone    string            `json:"client_phone"`
	EstimateNumber string            `json:"estimate_number"`
	Date           string            `json:"date"`
	LineItems      []LineItemRequest `json:"line_items" binding:"required"`
	TaxRate        *float64          `json:"tax_rate"`
	Subtotal       float64           `json:"subtotal"`
	TaxAmount      float64           `json:"tax_amount"`
	TotalAmount    float64           `json:"total_amount"`
}

// ToEntity maps the payload onto the domain estimate, applying the wire
// defaults (tax rate 18, unit SQFT). Derived fields are passed through as-is;
// the pricing pass discards and recomputes them.
func (r EstimateRequest) ToEntity() entities.Estimate {
	taxRate := defaultTaxRate
	if r.TaxRate != nil {
		taxRate = *r.TaxRate
	}

	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		unit := entities.Unit(li.Unit)
		if unit == "" {
			unit = entities.UnitSQFT
		}
		items = append(items, entities.LineItem{
			ID:           li.ID,
			Particulars:  li.Particulars,
			LengthFeet:   li.LengthFeet,
			LengthInches: li.LengthInches,
			WidthFeet:    li.WidthFeet,
			WidthInches:  li.WidthInches,
			Quantity:     li.Quantity,
			Unit:         unit,
			Rate:         li.Rate,
			Amount:       li.Amount,
		})
	}

	return entities.Estimate{
		ClientName:     r.ClientName,
		ClientAddress:  r.ClientAddress,
		ClientPhone:    r.ClientPhone,
		EstimateNumber: r.EstimateNumber,
		Date:           r.Date,
		LineItems:      items,
		TaxRate:        taxRate,
		Subtotal:       r.Subtotal,
		TaxAmount:      r.TaxAmount,
		TotalAmount:    r.TotalAmount,
	}
}
