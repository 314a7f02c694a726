package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
	applog "github.com/utsab8/Ecommerce-Cart-System/internal/log"
	"github.com/utsab8/Ecommerce-Cart-System/internal/services"
)

// currentUser resolves the request's user. The session middleware in main
// already places it in Locals for most requests; fall back to the sid
// cookie so the guards also work on bare apps (tests, partial wiring).
func currentUser(auth *services.AuthService, c *fiber.Ctx) *domain.User {
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
		return u
	}
	sid := c.Cookies("sid")
	if sid == "" {
		return nil
	}
	u, err := auth.CurrentUser(sid)
	if err != nil {
		return nil
	}
	return u
}

// RequireUser guards customer pages (checkout, order history): anonymous
// visitors are sent to the login form.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(auth, c)
		if u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireAdmin guards the /admin group. A logged-in non-admin gets a 403
// rather than a login redirect; looping them back to the form would not
// change their role.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(auth, c)
		if u == nil {
			return c.Redirect("/login")
		}
		if u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": u.ID})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
