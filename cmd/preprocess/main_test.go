package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"warehouse-route-prep/internal/config"
	"warehouse-route-prep/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"data/raw", "data/processed"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return &config.Config{
		ProjectRoot:           root,
		RawDataDir:            filepath.Join("data", "raw"),
		ProcessedDataDir:      filepath.Join("data", "processed"),
		InputFile:             "demand.csv",
		OutputFile:            "routes.csv",
		CustomersPerWarehouse: 3,
		VehicleCapacity:       500,
		RandomSeed:            5,
		PreviewRows:           10,
		MetricsTextfile:       filepath.Join(root, "routeprep.prom"),
	}
}

func TestRunWritesMetricsWhenReferencesFail(t *testing.T) {
	cfg := testConfig(t)
	cfg.ReferenceCoordsPath = filepath.Join(cfg.ProjectRoot, "missing.yaml")

	err := run(cfg)
	if !errors.Is(err, domain.ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}

	if _, err := os.Stat(cfg.MetricsTextfile); err != nil {
		t.Fatalf("metrics textfile not written: %v", err)
	}
}

func TestRunLogsSummary(t *testing.T) {
	cfg := testConfig(t)
	body := "Product_Code,Warehouse,Product_Category,Date,Order_Demand\n" +
		"Product_0001,Whse_B,Category_001,2016/1/4,100\n" +
		"Product_0002,Whse_A,Category_002,2016/1/5,20\n"
	if err := os.WriteFile(cfg.InputPath(), []byte(body), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	if err := run(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "rows=2 warehouses=2 records=6 output=") {
		t.Fatalf("summary not logged:\n%s", buf.String())
	}
	if _, err := os.Stat(cfg.OutputPath()); err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if _, err := os.Stat(cfg.MetricsTextfile); err != nil {
		t.Fatalf("metrics textfile not written: %v", err)
	}
}
