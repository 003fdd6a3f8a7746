package main

import (
	"context"
	"log"
	"os"
	"warehouse-route-prep/internal/adapters/csvfile"
	"warehouse-route-prep/internal/adapters/refcoords"
	"warehouse-route-prep/internal/config"
	"warehouse-route-prep/internal/domain"
	"warehouse-route-prep/internal/platform/metrics"
	"warehouse-route-prep/internal/platform/obs"
	"warehouse-route-prep/internal/services"

	"github.com/joho/godotenv"
)

// main is the composition root of the preprocessing run.
// It wires the CSV adapters behind ports and runs the pipeline once.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Starting preprocessing pipeline...")

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	log.Println("Pipeline completed successfully!")
}

func run(cfg *config.Config) (err error) {
	metrics.RegisterDefault()
	ctx := obs.WithRunID(context.Background())

	// Written for failed runs too.
	defer func() {
		if cfg.MetricsTextfile == "" {
			return
		}
		if werr := metrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			log.Printf("run_id=%s metrics write failed: %v", obs.RunID(ctx), werr)
		}
	}()

	refs := domain.DefaultReferenceLocations()
	if cfg.ReferenceCoordsPath != "" {
		loaded, err := refcoords.LoadReferenceLocations(cfg.ReferenceCoordsPath)
		if err != nil {
			return err
		}
		refs = loaded
	}

	synth := services.DefaultSynthesisConfig()
	synth.CustomersPerWarehouse = cfg.CustomersPerWarehouse
	synth.VehicleCapacity = cfg.VehicleCapacity

	req := services.PipelineRequest{
		References: refs,
		Synthesis:  synth,
		Rand:       services.NewRand(cfg.RandomSeed),
	}

	log.Printf("run_id=%s input=%s output=%s", obs.RunID(ctx), cfg.InputPath(), cfg.OutputPath())

	source := csvfile.NewDemandFile(cfg.InputPath())
	sink := csvfile.NewRouteFile(cfg.OutputPath(), os.Stdout, cfg.PreviewRows)

	summary, err := services.RunPipeline(ctx, req, source, sink)
	if err != nil {
		return err
	}

	log.Printf(
		"run_id=%s rows=%d warehouses=%d records=%d output=%s",
		obs.RunID(ctx), summary.DemandRows, summary.Warehouses, summary.RouteRecords, summary.Output,
	)
	return nil
}
