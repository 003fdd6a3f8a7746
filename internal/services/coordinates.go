package services

import (
	"fmt"
	"warehouse-route-prep/internal/domain"
)

// GenerateCityCoordinates assigns one base coordinate per warehouse by
// cycling through refs: result[i] = refs[i mod len(refs)].
// Warehouses past the end of refs reuse earlier coordinates unchanged.
func GenerateCityCoordinates(n int, refs []domain.ReferenceLocation) ([]domain.Coordinates, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate coordinates: %w: negative count %d", domain.ErrPrecondition, n)
	}
	if n > 0 && len(refs) == 0 {
		return nil, fmt.Errorf("generate coordinates: %w: reference list is empty", domain.ErrPrecondition)
	}

	coords := make([]domain.Coordinates, n)
	for i := range coords {
		coords[i] = refs[i%len(refs)].Coordinates
	}

	return coords, nil
}
