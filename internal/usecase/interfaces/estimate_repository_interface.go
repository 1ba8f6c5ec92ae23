package interfaces

import (
	"context"

	"github.com/havncube/billing-service/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Not-found convention: read operations return a zero-value Estimate with a
// nil error; the use case maps that to its NotFound sentinel.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) (bool, error)
	NextEstimateNumber(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}
