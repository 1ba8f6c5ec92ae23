package interfaces

import "github.com/havncube/billing-service/internal/domain/entities"

// IEstimateRenderer produces the printable PDF artifact for an estimate.
//
// Render must not mutate the estimate and must return either a complete
// document or an error, never partial output.

type IEstimateRenderer interface {
	Render(e entities.Estimate) ([]byte, error)
}
