package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Registry is the dedicated Prometheus registry for pipeline runs
	Registry = prometheus.NewRegistry()

	// DemandRows is the number of rows read from the demand dataset
	DemandRows = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "routeprep_demand_rows", Help: "Rows loaded from the demand dataset."},
	)
	// Warehouses is the number of distinct warehouses detected
	Warehouses = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "routeprep_warehouses", Help: "Distinct warehouses detected in the demand dataset."},
	)
	// RouteRecords counts synthesized route records
	RouteRecords = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "routeprep_route_records_total", Help: "Synthetic route records generated."},
	)
	// StageDuration records per-stage durations in seconds
	StageDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "routeprep_stage_duration_seconds", Help: "Duration of the last run of each pipeline stage."},
		[]string{"stage", "status"},
	)
	// LastSuccess is the unix time of the last successful pipeline run
	LastSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "routeprep_last_success_timestamp_seconds", Help: "Unix time of the last successful run."},
	)
)

var regOnce sync.Once

// RegisterDefault registers the pipeline collectors on Registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(DemandRows)
		Registry.MustRegister(Warehouses)
		Registry.MustRegister(RouteRecords)
		Registry.MustRegister(StageDuration)
		Registry.MustRegister(LastSuccess)
	})
}

func ObserveStage(stage, status string, d time.Duration) {
	StageDuration.WithLabelValues(stage, status).Set(d.Seconds())
}

// WriteTextfile dumps Registry in the text exposition format, for the
// node exporter textfile collector.
func WriteTextfile(path string) error {
	RegisterDefault()
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}
