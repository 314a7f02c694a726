package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utsab8/Ecommerce-Cart-System/internal/services"
	"github.com/utsab8/Ecommerce-Cart-System/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// Home renders the storefront from the current catalog snapshot.
func (h *ProductHandler) Home(c *fiber.Ctx) error {
	return render(c, "storefront", fiber.Map{"Products": h.Catalog.List()})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, ok := h.Catalog.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"Product": p, "Availability": p.Availability()})
}
