package response

import (
	"time"

	"github.com/havncube/billing-service/internal/domain/entities"
)

type LineItemResponse struct {
	ID           string  `json:"id"`
	Particulars  string  `json:"particulars"`
	LengthFeet   int     `json:"length_feet"`
	LengthInches int     `json:"length_inches"`
	WidthFeet    int     `json:"width_feet"`
	WidthInches  int     `json:"width_inches"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Rate         float64 `json:"rate"`
	Amount       float64 `json:"amount"`
}

type EstimateResponse struct {
	ID             string             `json:"id"`
	ClientName     string             `json:"client_name"`
	ClientAddress  string             `json:"client_address"`
	ClientPhone    string             `json:"client_phone"`
	EstimateNumber string             `json:"estimate_number"`
	Date           string             `json:"date"`
	LineItems      []LineItemResponse `json:"line_items"`
	TaxRate        float64            `json:"tax_rate"`
	Subtotal       float64            `json:"subtotal"`
	TaxAmount      float64            `json:"tax_amount"`
	TotalAmount    float64            `json:"total_amount"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, LineItemResponse{
			ID:           li.ID,
			Particulars:  li.Particulars,
			LengthFeet:   li.LengthFeet,
			LengthInches: li.LengthInches,
			WidthFeet:    li.WidthFeet,
			WidthInches:  li.WidthInches,
			Quantity:     li.Quantity,
			Unit:         string(li.Unit),
			Rate:         li.Rate,
			Amount:       li.Amount,
		})
	}
	return EstimateResponse{
		ID:             e.ID,
		ClientName:     e.ClientName,
		ClientAddress:  e.ClientAddress,
		ClientPhone:    e.ClientPhone,
		EstimateNumber: e.EstimateNumber,
		Date:           e.Date,
		LineItems:      items,
		TaxRate:        e.TaxRate,
		Subtotal:       e.Subtotal,
		TaxAmount:      e.TaxAmount,
		TotalAmount:    e.TotalAmount,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}
