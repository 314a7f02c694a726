package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "github.com/utsab8/Ecommerce-Cart-System/internal/log"
	"github.com/utsab8/Ecommerce-Cart-System/internal/services"
	"github.com/utsab8/Ecommerce-Cart-System/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv := h.Cart.View(ensureSID(c))
	return render(c, "cart", fiber.Map{"Cart": cv})
}

// Add is the only cart endpoint that can reject: the product must still
// exist in the catalog so the cart can capture its price.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing or invalid productId")
	}
	if err := h.Cart.Add(sid, id); err != nil {
		applog.Security(c, "cart.unknown_product", map[string]any{"product_id": id})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return c.Redirect("/cart")
}

// mutate handles the never-failing cart operations: they address existing
// lines by product ID and fall back to a no-op when the line is absent.
func (h *CartHandler) mutate(c *fiber.Ctx, op func(sid string, productID int)) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing or invalid productId")
	}
	op(sid, id)
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error   { return h.mutate(c, h.Cart.Remove) }
func (h *CartHandler) Increase(c *fiber.Ctx) error { return h.mutate(c, h.Cart.Increase) }
func (h *CartHandler) Decrease(c *fiber.Ctx) error { return h.mutate(c, h.Cart.Decrease) }

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.Clear(ensureSID(c))
	return c.Redirect("/cart")
}
