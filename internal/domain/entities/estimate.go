package entities

import "time"

// Unit is the billing unit of a line item.
//
// Domain notes:
//   - SQFT items are billed by area. When rectangular dimensions are present
//     (length_feet > 0) the quantity is derived from them; otherwise the
//     caller-supplied quantity is taken as-is (irregular areas entered flat).
//   - NOS items are billed by count; dimensions are ignored.

type Unit string

const (
	UnitSQFT Unit = "SQFT"
	UnitNOS  Unit = "NOS"
)

// LineItem is one billable entry on an estimate.
//
// Trust model (kept as the product baseline):
//   - SQFT with length_feet > 0: quantity and amount are derived on every write.
//   - NOS or dimensionless SQFT: quantity and amount are caller-supplied.
type LineItem struct {
	ID           string  `json:"id"`
	Particulars  string  `json:"particulars"`
	LengthFeet   int     `json:"length_feet"`
	LengthInches int     `json:"length_inches"`
	WidthFeet    int     `json:"width_feet"`
	WidthInches  int     `json:"width_inches"`
	Quantity     float64 `json:"quantity"`
	Unit         Unit    `json:"unit"`
	Rate         float64 `json:"rate"`
	Amount       float64 `json:"amount"`
}

// Estimate is the billing estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EstimateNumber is a human-facing sequential code (HCE-%04d) assigned from a
// store-owned counter when the caller leaves it blank; it is a label, not a key.
// Subtotal, TaxAmount and TotalAmount are recomputed on every create and update
// and never trusted from caller input.
type Estimate struct {
	ID             string     `json:"id"`
	ClientName     string     `json:"client_name"`
	ClientAddress  string     `json:"client_address"`
	ClientPhone    string     `json:"client_phone"`
	EstimateNumber string     `json:"estimate_number"`
	Date           string     `json:"date"`
	LineItems      []LineItem `json:"line_items"`
	TaxRate        float64    `json:"tax_rate"`
	Subtotal       float64    `json:"subtotal"`
	TaxAmount      float64    `json:"tax_amount"`
	TotalAmount    float64    `json:"total_amount"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
