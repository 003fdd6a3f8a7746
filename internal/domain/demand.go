package domain

// Column names of the historical product demand dataset.
const (
	ColProductCode     = "Product_Code"
	ColWarehouse       = "Warehouse"
	ColProductCategory = "Product_Category"
	ColDate            = "Date"
	ColOrderDemand     = "Order_Demand"
)

// RequiredDemandColumns lists the columns every demand file must carry.
var RequiredDemandColumns = []string{
	ColProductCode,
	ColWarehouse,
	ColProductCategory,
	ColDate,
	ColOrderDemand,
}

// Represents one row of the historical demand dataset.
// Values are kept exactly as they appear in the source file.
type DemandRecord struct {
	ProductCode     string
	Warehouse       string
	ProductCategory string
	Date            string
	OrderDemand     string
}

// DemandDataset is the loaded input table. Columns keeps the full header,
// including any extra columns the file carried.
type DemandDataset struct {
	Columns []string
	Records []DemandRecord
}

// Number of distinct warehouse identifiers in the dataset.
// Blank warehouse cells are missing values and are not counted.
func (d *DemandDataset) WarehouseCount() int {
	seen := make(map[string]struct{})
	for _, r := range d.Records {
		if r.Warehouse == "" {
			continue
		}
		seen[r.Warehouse] = struct{}{}
	}
	return len(seen)
}
