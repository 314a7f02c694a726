package catalog

import (
	"context"
	"time"

	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
)

// Refresher polls the store on a fixed interval and swaps the cache when
// the loaded collection differs. Display layers register OnChange to get
// told when a re-render is worthwhile; the callback runs on the refresher
// goroutine, so it must hand off to the right thread/loop itself.
//
// Polling is deliberate: the catalog has a single infrequent writer, so a
// customer surface seeing an admin edit up to one interval late is fine.
type Refresher struct {
	Store    Store
	Cache    *Cache
	Interval time.Duration
	OnChange func([]domain.Product)
	OnError  func(error)
}

// Run polls until ctx is cancelled. The ticker is released on return.
func (r *Refresher) Run(ctx context.Context) {
	interval := r.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.refresh()
		}
	}
}

func (r *Refresher) refresh() {
	ps, err := r.Store.Load()
	if err != nil {
		// Keep whatever snapshot is already cached.
		if r.OnError != nil {
			r.OnError(err)
		}
		return
	}
	if r.Cache.Equal(ps) {
		return
	}
	r.Cache.Replace(ps)
	if r.OnChange != nil {
		r.OnChange(ps)
	}
}
