package stats

import "context"

type Repository interface {
	CountProduction(ctx context.Context) (int64, error)
	CountSales(ctx context.Context) (int64, error)
	// SumSalesTotals sums total_amount over sales records. A nil or empty
	// status list means all records; otherwise only records whose
	// payment_status is in the list are summed.
	SumSalesTotals(ctx context.Context, statuses []string) (float64, error)
}
