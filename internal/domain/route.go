package domain

import "strconv"

// Column names of the synthetic route planning dataset, in output order.
var RouteColumns = []string{
	"Warehouse",
	"Customer_ID",
	"Latitude",
	"Longitude",
	"Demand",
	"Vehicle_Capacity",
	"Priority_Level",
	"Traffic_Condition",
}

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	TrafficLow    = "Low"
	TrafficMedium = "Medium"
	TrafficHigh   = "High"
)

// Represents one synthetic customer delivery point assigned to a warehouse.
type RouteRecord struct {
	Warehouse        string
	CustomerID       string
	Latitude         float64
	Longitude        float64
	Demand           int
	VehicleCapacity  int
	PriorityLevel    string
	TrafficCondition string
}

// Row renders the record in RouteColumns order.
func (r RouteRecord) Row() []string {
	return []string{
		r.Warehouse,
		r.CustomerID,
		strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		strconv.FormatFloat(r.Longitude, 'f', -1, 64),
		strconv.Itoa(r.Demand),
		strconv.Itoa(r.VehicleCapacity),
		r.PriorityLevel,
		r.TrafficCondition,
	}
}

// Build a Table with one row per record.
func RouteTable(records []RouteRecord) *Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	return &Table{Columns: RouteColumns, Rows: rows}
}
