package services

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"warehouse-route-prep/internal/domain"
	"warehouse-route-prep/internal/platform/metrics"
	"warehouse-route-prep/internal/platform/obs"
	"warehouse-route-prep/internal/ports"

	"gonum.org/v1/gonum/stat"
)

type PipelineRequest struct {
	References []domain.ReferenceLocation
	Synthesis  SynthesisConfig
	Rand       *rand.Rand
}

// PipelineSummary describes the outcome of one run.
type PipelineSummary struct {
	DemandRows   int
	Warehouses   int
	RouteRecords int
	MeanDemand   float64
	Output       string
}

// RunPipeline loads the demand dataset, derives its warehouses, synthesizes
// route records around them and hands the result to sink.
//
// Stages run strictly in sequence; the first failure aborts the run and is
// returned unchanged apart from wrapping.
func RunPipeline(
	ctx context.Context,
	req PipelineRequest,
	source ports.DemandSource,
	sink ports.RouteSink,
) (*PipelineSummary, error) {
	refs := req.References
	if refs == nil {
		refs = domain.DefaultReferenceLocations()
	}
	rng := req.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	ds, err := loadStage(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: %w", err)
	}
	metrics.DemandRows.Set(float64(len(ds.Records)))

	warehouses := UniqueWarehouses(ds)
	metrics.Warehouses.Set(float64(len(warehouses)))

	records, err := synthesizeStage(ctx, rng, warehouses, refs, req.Synthesis)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: %w", err)
	}
	metrics.RouteRecords.Add(float64(len(records)))

	output, err := saveStage(ctx, sink, records)
	if err != nil {
		return nil, fmt.Errorf("run pipeline: %w", err)
	}
	metrics.LastSuccess.SetToCurrentTime()

	return &PipelineSummary{
		DemandRows:   len(ds.Records),
		Warehouses:   len(warehouses),
		RouteRecords: len(records),
		MeanDemand:   meanDemand(records),
		Output:       output,
	}, nil
}

func loadStage(ctx context.Context, source ports.DemandSource) (_ *domain.DemandDataset, err error) {
	defer obs.Time(ctx, "demand.load")(&err)
	return source.LoadDemand(ctx)
}

func synthesizeStage(
	ctx context.Context,
	rng *rand.Rand,
	warehouses []string,
	refs []domain.ReferenceLocation,
	cfg SynthesisConfig,
) (_ []domain.RouteRecord, err error) {
	defer obs.Time(ctx, "routes.synthesize")(&err)

	coords, err := GenerateCityCoordinates(len(warehouses), refs)
	if err != nil {
		return nil, err
	}
	return GenerateRouteData(rng, warehouses, coords, cfg)
}

func saveStage(ctx context.Context, sink ports.RouteSink, records []domain.RouteRecord) (_ string, err error) {
	defer obs.Time(ctx, "routes.save")(&err)
	return sink.SaveRoutes(ctx, records)
}

func meanDemand(records []domain.RouteRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	demand := make([]float64, len(records))
	for i, r := range records {
		demand[i] = float64(r.Demand)
	}
	mean := stat.Mean(demand, nil)
	log.Printf("Mean synthetic demand=%.1f over %d customers", mean, len(records))
	return mean
}
