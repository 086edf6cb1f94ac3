// Package refresh tracks per-table change counters. A counter is bumped after
// every successful mutation of its table and consumed by readers that cache
// derived data: equal counters mean the cached value is still current. The
// counters replace implicit "re-fetch on change" signaling with an explicit,
// testable invalidation contract.
package refresh

import "sync"

const (
	TableProduction = "production_records"
	TableSales      = "sales_records"
)

// Versions is a consistent snapshot of both counters.
type Versions struct {
	Production uint64
	Sales      uint64
}

type Tracker struct {
	mu       sync.Mutex
	versions Versions
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Bump increments the counter for one table. Counters only ever grow.
func (t *Tracker) Bump(table string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch table {
	case TableProduction:
		t.versions.Production++
	case TableSales:
		t.versions.Sales++
	}
}

func (t *Tracker) Snapshot() Versions {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.versions
}
