package handler

import "net/http"

type statsOverviewResponse struct {
	TotalProductionCount int64   `json:"total_production_count"`
	TotalSalesCount      int64   `json:"total_sales_count"`
	TotalRevenue         float64 `json:"total_revenue"`
	PendingPayments      float64 `json:"pending_payments"`
}

func (h *Handlers) StatsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Stats.Overview(r.Context())
	if err != nil {
		h.log.InternalError("stats.overview: compute failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, statsOverviewResponse{
		TotalProductionCount: overview.TotalProductionCount,
		TotalSalesCount:      overview.TotalSalesCount,
		TotalRevenue:         overview.TotalRevenue,
		PendingPayments:      overview.PendingPayments,
	})
}
