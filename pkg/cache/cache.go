package cache

import (
	"context"
	"time"

	"github.com/amirasaad/fxconvert/pkg/exchange"
)

// Snapshot is the cached rate table together with the time it was fetched.
// The conversion service decides staleness against its own TTL and clock.
type Snapshot struct {
	Table     *exchange.RateTable `json:"table"`
	FetchedAt time.Time           `json:"fetched_at"`
}

// RateTableCache defines the interface for the single-slot rate table cache.
// The slot is overwritten wholesale on each refresh; there is no partial merge.
type RateTableCache interface {
	// Get returns the current snapshot, or nil when the slot is empty.
	Get(ctx context.Context) (*Snapshot, error)
	// Set overwrites the slot.
	Set(ctx context.Context, snap *Snapshot) error
}
