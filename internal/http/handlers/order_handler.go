package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
	applog "github.com/utsab8/Ecommerce-Cart-System/internal/log"
	"github.com/utsab8/Ecommerce-Cart-System/internal/repos"
	"github.com/utsab8/Ecommerce-Cart-System/internal/services"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
	Repo  *repos.OrderRepo
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	cv := h.Cart.View(ensureSID(c))
	return render(c, "checkout", fiber.Map{"Cart": cv})
}

// Place hands the cart snapshot to order placement and, only on success,
// clears the cart. A failed placement leaves the cart intact so the
// customer can re-trigger checkout.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/login")
	}

	cv := h.Cart.View(sid)
	if err := h.Order.Place(u.ID, cv.Items); err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			applog.Security(c, "order.place.empty", map[string]any{"user_id": u.ID})
			return c.Status(fiber.StatusBadRequest).Render("checkout", fiber.Map{
				"Cart": cv, "Err": "Your cart is empty.",
			})
		}
		return c.Status(fiber.StatusBadGateway).Render("checkout", fiber.Map{
			"Cart": cv, "Err": "Could not place your order. Please try again.",
		})
	}

	h.Cart.Clear(sid)
	applog.Audit(c, "order.place", map[string]any{
		"user_id":  u.ID,
		"lines":    len(cv.Items),
		"subtotal": cv.Subtotal.String(),
	})
	return c.Redirect("/orders")
}

// History lists the current user's persisted order lines.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/login")
	}
	rows, err := h.Repo.ListByUser(u.ID)
	if err != nil {
		applog.Error(c, "orders.history.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "order_history", fiber.Map{"Orders": rows})
}
