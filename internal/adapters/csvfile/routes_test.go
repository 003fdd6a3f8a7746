package csvfile

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"warehouse-route-prep/internal/domain"
)

func sampleRoutes() []domain.RouteRecord {
	return []domain.RouteRecord{
		{Warehouse: "WH_A", CustomerID: "WH_A_CUST_1", Latitude: 40.4123, Longitude: -3.6871, Demand: 120, VehicleCapacity: 500, PriorityLevel: "High", TrafficCondition: "Low"},
		{Warehouse: "WH_A", CustomerID: "WH_A_CUST_2", Latitude: 40.38, Longitude: -3.7345, Demand: 51, VehicleCapacity: 500, PriorityLevel: "Medium", TrafficCondition: "High"},
		{Warehouse: "WH_B", CustomerID: "WH_B_CUST_1", Latitude: 41.4, Longitude: 2.1502, Demand: 249, VehicleCapacity: 500, PriorityLevel: "Low", TrafficCondition: "Medium"},
	}
}

func TestSaveRoutesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.csv")
	var out bytes.Buffer

	abs, err := SaveRoutes(path, sampleRoutes(), &out, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("returned path %q is not absolute", abs)
	}

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if !slices.Equal(table.Columns, domain.RouteColumns) {
		t.Fatalf("columns = %v, want %v", table.Columns, domain.RouteColumns)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows))
	}
	if got := table.Rows[1]; !slices.Equal(got, []string{"WH_A", "WH_A_CUST_2", "40.38", "-3.7345", "51", "500", "Medium", "High"}) {
		t.Errorf("row 1 = %v", got)
	}

	preview := out.String()
	if !strings.Contains(preview, "Saved dataset to "+abs) {
		t.Errorf("preview missing saved path:\n%s", preview)
	}
	if !strings.Contains(preview, "WH_B_CUST_1") {
		t.Errorf("preview missing last row:\n%s", preview)
	}
}

func TestSaveRoutesPreviewIsTruncated(t *testing.T) {
	var out bytes.Buffer
	if _, err := SaveRoutes(filepath.Join(t.TempDir(), "routes.csv"), sampleRoutes(), &out, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	preview := out.String()
	if !strings.Contains(preview, "WH_A_CUST_1") {
		t.Errorf("preview missing first row:\n%s", preview)
	}
	if strings.Contains(preview, "WH_A_CUST_2") {
		t.Errorf("preview should hold a single row:\n%s", preview)
	}
}

func TestSaveRoutesMissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed", "routes.csv")

	_, err := SaveRoutes(path, sampleRoutes(), nil, 10)
	if !errors.Is(err, domain.ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
}

func TestSaveRoutesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.csv")
	if _, err := SaveRoutes(path, nil, nil, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(table.Rows) != 0 || len(table.Columns) != len(domain.RouteColumns) {
		t.Fatalf("table = %+v, want header only", table)
	}
}
