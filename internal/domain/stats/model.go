package stats

// Overview is the dashboard summary. Empty tables produce zero values, never
// an error.
type Overview struct {
	TotalProductionCount int64
	TotalSalesCount      int64
	TotalRevenue         float64
	PendingPayments      float64
}
