package services

import (
	"fmt"
	"log"
	"math/rand/v2"
	"warehouse-route-prep/internal/domain"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/floats/scalar"
)

var validate = validator.New()

// SynthesisConfig parameterizes the synthetic customer records generated
// around each warehouse.
type SynthesisConfig struct {
	CustomersPerWarehouse int                `validate:"gte=0"`
	VehicleCapacity       int                `validate:"gte=0"`
	Jitter                float64            `validate:"gte=0"`
	DemandMin             int                `validate:"gte=0"`
	DemandMax             int                `validate:"gtfield=DemandMin"`
	Precision             int                `validate:"gte=0,lte=15"`
	PriorityLevels        []Weighted[string] `validate:"min=1"`
	TrafficConditions     []Weighted[string] `validate:"min=1"`
}

func DefaultSynthesisConfig() SynthesisConfig {
	return SynthesisConfig{
		CustomersPerWarehouse: 3,
		VehicleCapacity:       500,
		Jitter:                0.05,
		DemandMin:             50,
		DemandMax:             250,
		Precision:             4,
		PriorityLevels: []Weighted[string]{
			{Value: domain.PriorityHigh, Weight: 0.2},
			{Value: domain.PriorityMedium, Weight: 0.5},
			{Value: domain.PriorityLow, Weight: 0.3},
		},
		TrafficConditions: []Weighted[string]{
			{Value: domain.TrafficLow, Weight: 0.4},
			{Value: domain.TrafficMedium, Weight: 0.4},
			{Value: domain.TrafficHigh, Weight: 0.2},
		},
	}
}

// GenerateRouteData fans each warehouse out into cfg.CustomersPerWarehouse
// synthetic customer records placed near its base coordinate.
//
// warehouses and coords are paired by position and must have equal length.
// Records are grouped by warehouse in input order, then by customer index.
// All randomness is drawn from rng, so a seeded rng reproduces the output.
func GenerateRouteData(
	rng *rand.Rand,
	warehouses []string,
	coords []domain.Coordinates,
	cfg SynthesisConfig,
) ([]domain.RouteRecord, error) {
	if rng == nil {
		return nil, fmt.Errorf("generate route data: %w: rng must be non-nil", domain.ErrPrecondition)
	}

	if len(warehouses) != len(coords) {
		return nil, fmt.Errorf(
			"generate route data: %w: %d warehouses but %d coordinates",
			domain.ErrPrecondition, len(warehouses), len(coords),
		)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("generate route data: %w: %w", domain.ErrPrecondition, err)
	}

	priority, err := NewWeightedChooser(cfg.PriorityLevels)
	if err != nil {
		return nil, fmt.Errorf("generate route data: priority levels: %w", err)
	}
	traffic, err := NewWeightedChooser(cfg.TrafficConditions)
	if err != nil {
		return nil, fmt.Errorf("generate route data: traffic conditions: %w", err)
	}

	jitter := func(base float64) float64 {
		return scalar.Round(base+(rng.Float64()*2-1)*cfg.Jitter, cfg.Precision)
	}

	records := make([]domain.RouteRecord, 0, len(warehouses)*cfg.CustomersPerWarehouse)
	for w, wh := range warehouses {
		base := coords[w]
		for i := 1; i <= cfg.CustomersPerWarehouse; i++ {
			records = append(records, domain.RouteRecord{
				Warehouse:        wh,
				CustomerID:       fmt.Sprintf("%s_CUST_%d", wh, i),
				Latitude:         jitter(base.Lat),
				Longitude:        jitter(base.Lon),
				Demand:           cfg.DemandMin + rng.IntN(cfg.DemandMax-cfg.DemandMin),
				VehicleCapacity:  cfg.VehicleCapacity,
				PriorityLevel:    priority.Pick(rng),
				TrafficCondition: traffic.Pick(rng),
			})
		}
	}

	log.Printf("Generated %d route records for %d warehouses.", len(records), len(warehouses))
	return records, nil
}
