package ports

import (
	"context"
	"warehouse-route-prep/internal/domain"
)

// Port: a boundary for loading the historical demand dataset.
type DemandSource interface {
	// Load and validate the demand dataset.
	LoadDemand(ctx context.Context) (*domain.DemandDataset, error)
}
