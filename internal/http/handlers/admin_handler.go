package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/utsab8/Ecommerce-Cart-System/internal/log"
	"github.com/utsab8/Ecommerce-Cart-System/internal/repos"
	"github.com/utsab8/Ecommerce-Cart-System/internal/services"
	"github.com/utsab8/Ecommerce-Cart-System/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Orders  *repos.OrderRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	ords, _ := h.Orders.ListLatest(25)
	return render(c, "admin_dashboard", fiber.Map{
		"Products": h.Catalog.List(),
		"Orders":   ords,
	})
}

func (h *AdminHandler) productInput(c *fiber.Ctx) (services.ProductInput, string, bool) {
	name, okN := validate.Name(c.FormValue("name"))
	if !okN {
		return services.ProductInput{}, "name is required (max 60 characters)", false
	}
	price, okP := validate.Price(c.FormValue("price"))
	if !okP {
		return services.ProductInput{}, "price must be a positive number", false
	}
	stock, okS := validate.Stock(c.FormValue("stock"))
	if !okS {
		return services.ProductInput{}, "stock must be zero or more", false
	}
	return services.ProductInput{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.FormValue("category"),
	}, "", true
}

// POST /admin/products
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	in, msg, ok := h.productInput(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"form": "product", "reason": msg})
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}
	p, err := h.Catalog.Add(in)
	if err != nil {
		applog.Error(c, "admin.product.add.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("could not save product")
	}
	applog.Audit(c, "admin.product.add", map[string]any{"product_id": p.ID, "name": p.Name})
	return c.Redirect("/admin")
}

// POST /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid product id")
	}
	in, msg, okIn := h.productInput(c)
	if !okIn {
		applog.Security(c, "validation.fail", map[string]any{"form": "product", "reason": msg})
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}
	if err := h.Catalog.Update(id, in); err != nil {
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update product")
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid product id")
	}
	if err := h.Catalog.Delete(id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not delete product")
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	ords, err := h.Orders.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "admin_orders", fiber.Map{"Orders": ords})
}
