package csvfile

import (
	"context"
	"fmt"
	"log"
	"warehouse-route-prep/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var counts = message.NewPrinter(language.English)

// File-backed implementation of the DemandSource port.
type DemandFile struct{ Path string }

func NewDemandFile(path string) *DemandFile {
	return &DemandFile{Path: path}
}

func (d *DemandFile) LoadDemand(ctx context.Context) (*domain.DemandDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load demand: %w", err)
	}
	return LoadDemand(d.Path)
}

// LoadDemand reads and validates the historical product demand dataset.
// All required columns must be present; extra columns are ignored.
func LoadDemand(path string) (*domain.DemandDataset, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("load demand: %w", err)
	}

	if missing := table.MissingColumns(domain.RequiredDemandColumns); len(missing) > 0 {
		return nil, fmt.Errorf("load demand: %q: %w", path, &domain.SchemaError{
			Found:   table.Columns,
			Missing: missing,
		})
	}

	var (
		iCode     = table.ColumnIndex(domain.ColProductCode)
		iWh       = table.ColumnIndex(domain.ColWarehouse)
		iCategory = table.ColumnIndex(domain.ColProductCategory)
		iDate     = table.ColumnIndex(domain.ColDate)
		iDemand   = table.ColumnIndex(domain.ColOrderDemand)
	)

	records := make([]domain.DemandRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, domain.DemandRecord{
			ProductCode:     row[iCode],
			Warehouse:       row[iWh],
			ProductCategory: row[iCategory],
			Date:            row[iDate],
			OrderDemand:     row[iDemand],
		})
	}

	ds := &domain.DemandDataset{Columns: table.Columns, Records: records}
	log.Print(counts.Sprintf(
		"Loaded dataset with %d rows and %d unique warehouses.",
		len(ds.Records), ds.WarehouseCount(),
	))

	return ds, nil
}
