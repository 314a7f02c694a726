package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utsab8/Ecommerce-Cart-System/internal/catalog"
	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
)

type fakeStore struct {
	mu       sync.Mutex
	products []domain.Product
	err      error
	loads    int
}

func (f *fakeStore) Load() ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeStore) Save([]domain.Product) error { return nil }

func (f *fakeStore) set(ps []domain.Product, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products, f.err = ps, err
}

func TestRefresherSwapsCacheOnChange(t *testing.T) {
	store := &fakeStore{}
	cache := catalog.NewCache()
	changed := make(chan int, 16)

	r := &catalog.Refresher{
		Store:    store,
		Cache:    cache,
		Interval: 10 * time.Millisecond,
		OnChange: func(ps []domain.Product) { changed <- len(ps) },
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	store.set([]domain.Product{{ID: 1, Name: "Laptop", Price: decimal.RequireFromString("1299.99")}}, nil)

	select {
	case n := <-changed:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("refresher never reported the changed catalog")
	}

	p, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Laptop", p.Name)
}

func TestRefresherSkipsCallbackWhenUnchanged(t *testing.T) {
	ps := []domain.Product{{ID: 1, Name: "Laptop", Price: decimal.RequireFromString("1299.99")}}
	store := &fakeStore{products: ps}
	cache := catalog.NewCache()
	cache.Replace(ps)

	var calls int
	var mu sync.Mutex
	r := &catalog.Refresher{
		Store:    store,
		Cache:    cache,
		Interval: 5 * time.Millisecond,
		OnChange: func([]domain.Product) { mu.Lock(); calls++; mu.Unlock() },
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	r.Run(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls, "identical loads must not re-render")
}

func TestRefresherKeepsCacheOnLoadError(t *testing.T) {
	ps := []domain.Product{{ID: 1, Name: "Laptop", Price: decimal.RequireFromString("1299.99")}}
	store := &fakeStore{err: errors.New("disk gone")}
	cache := catalog.NewCache()
	cache.Replace(ps)

	errs := make(chan error, 16)
	r := &catalog.Refresher{
		Store:    store,
		Cache:    cache,
		Interval: 5 * time.Millisecond,
		OnError:  func(err error) { errs <- err },
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("refresher never reported the load error")
	}

	_, ok := cache.Get(1)
	assert.True(t, ok, "a failed poll must leave the previous snapshot intact")
}

func TestRefresherStopsOnCancel(t *testing.T) {
	store := &fakeStore{}
	r := &catalog.Refresher{
		Store:    store,
		Cache:    catalog.NewCache(),
		Interval: time.Millisecond,
	}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop after cancel")
	}

	store.mu.Lock()
	after := store.loads
	store.mu.Unlock()
	time.Sleep(20 * time.Millisecond)
	store.mu.Lock()
	assert.Equal(t, after, store.loads, "no more loads after cancel")
	store.mu.Unlock()
}
