package services

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/utsab8/Ecommerce-Cart-System/internal/cart"
	"github.com/utsab8/Ecommerce-Cart-System/internal/catalog"
	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
)

var ErrUnknownProduct = errors.New("unknown product")

// CartService keeps one in-memory cart per session. The registry map is
// guarded because fiber serves requests concurrently; each cart itself is
// only ever touched under that same lock.
type CartService struct {
	Catalog *catalog.Cache

	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func NewCartService(cache *catalog.Cache) *CartService {
	return &CartService{Catalog: cache, carts: make(map[string]*cart.Cart)}
}

func (s *CartService) get(sid string) *cart.Cart {
	c, ok := s.carts[sid]
	if !ok {
		c = cart.New()
		s.carts[sid] = c
	}
	return c
}

// Add resolves the product against the current catalog snapshot and merges
// it into the session's cart. Only Add needs the catalog (it captures the
// product's price); the other mutations work off the lines already in the
// cart so they stay no-op-safe even after an admin deletes the product.
func (s *CartService) Add(sid string, productID int) error {
	p, ok := s.Catalog.Get(productID)
	if !ok {
		return ErrUnknownProduct
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sid).AddItem(p)
	return nil
}

// Cart lines match by product ID, so a key-only value is enough to address
// an existing line.
func byID(productID int) domain.Product { return domain.Product{ID: productID} }

func (s *CartService) Remove(sid string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sid).RemoveItem(byID(productID))
}

func (s *CartService) Increase(sid string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sid).IncreaseQuantity(byID(productID))
}

func (s *CartService) Decrease(sid string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sid).DecreaseQuantity(byID(productID))
}

func (s *CartService) Clear(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sid).Clear()
}

type CartView struct {
	Items     []cart.Item
	ItemCount int
	Subtotal  decimal.Decimal
}

// View returns a read-only snapshot of the session's cart for display and
// for handing to order placement at checkout.
func (s *CartService) View(sid string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(sid)
	return CartView{Items: c.Items(), ItemCount: c.ItemCount(), Subtotal: c.Subtotal()}
}
