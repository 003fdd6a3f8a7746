package ports

import (
	"context"
	"warehouse-route-prep/internal/domain"
)

// Port: a destination for synthesized route records.
type RouteSink interface {
	// Persist the records and return a human-readable location of the result.
	SaveRoutes(ctx context.Context, records []domain.RouteRecord) (string, error)
}
