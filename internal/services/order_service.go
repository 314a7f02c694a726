package services

import (
	"errors"
	"fmt"

	"github.com/utsab8/Ecommerce-Cart-System/internal/cart"
	applog "github.com/utsab8/Ecommerce-Cart-System/internal/log"
	"github.com/utsab8/Ecommerce-Cart-System/internal/repos"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderWriter is what order placement needs from persistence: one batch,
// all lines or none.
type OrderWriter interface {
	InsertBatch([]repos.OrderLine) error
}

type OrderService struct {
	Orders OrderWriter
}

func NewOrderService(orders OrderWriter) *OrderService {
	return &OrderService{Orders: orders}
}

// Place converts cart lines into one persisted order batch for userID.
// An empty cart is rejected before any persistence call. A persistence
// failure is logged and returned as an error result; no retry, and the
// cart is untouched either way (the caller clears it on success).
func (s *OrderService) Place(userID int, items []cart.Item) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}

	lines := make([]repos.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, repos.OrderLine{
			UserID:      userID,
			ProductName: it.Product.Name,
			Quantity:    it.Qty,
			TotalPrice:  it.LineTotal(),
		})
	}

	if err := s.Orders.InsertBatch(lines); err != nil {
		applog.Error(nil, "order.place.fail", err, map[string]any{"user_id": userID, "lines": len(lines)})
		return fmt.Errorf("place order: %w", err)
	}
	return nil
}
