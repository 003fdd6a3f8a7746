package services

import (
	"log"
	"slices"
	"strings"
	"warehouse-route-prep/internal/domain"
)

const warehousePreview = 10

// UniqueWarehouses returns the distinct warehouse identifiers of ds in
// ascending lexicographic order. Blank warehouse cells are skipped.
func UniqueWarehouses(ds *domain.DemandDataset) []string {
	warehouses := make([]string, 0, 16)
	for _, r := range ds.Records {
		if r.Warehouse == "" {
			continue
		}
		warehouses = append(warehouses, r.Warehouse)
	}
	slices.Sort(warehouses)
	warehouses = slices.Compact(warehouses)

	preview := warehouses[:min(len(warehouses), warehousePreview)]
	more := ""
	if len(warehouses) > warehousePreview {
		more = "..."
	}
	log.Printf("Detected %d warehouses: [%s]%s", len(warehouses), strings.Join(preview, ", "), more)

	return warehouses
}
