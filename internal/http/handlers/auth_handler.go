package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/utsab8/Ecommerce-Cart-System/internal/log"
	"github.com/utsab8/Ecommerce-Cart-System/internal/services"
	"github.com/utsab8/Ecommerce-Cart-System/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}

	u, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	if u.Role == "ADMIN" {
		return c.Redirect("/admin")
	}
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	first, okF := validate.Name(c.FormValue("first_name"))
	last, okL := validate.Name(c.FormValue("last_name"))
	email, okE := validate.Email(c.FormValue("email"))
	dob, okD := validate.DOB(c.FormValue("dob"))
	pass := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	fail := func(msg string, reason string) error {
		log.Security(c, "auth.register.fail", map[string]any{"reason": reason})
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": msg})
	}

	if !okF || !okL || !okE || !okD {
		return fail("Please fill in all fields correctly.", "bad_field")
	}
	if !validate.Password(pass) {
		return fail("Password must be 8-64 characters with upper, lower, digit and symbol.", "weak_password")
	}
	if pass != confirm {
		return fail("Passwords do not match.", "mismatch")
	}

	_, err := h.Auth.Register(services.Registration{
		FirstName: first, LastName: last, Email: email, Password: pass, DOB: dob,
	})
	if errors.Is(err, services.ErrEmailTaken) {
		return fail("An account with this email already exists.", "email_taken")
	}
	if err != nil {
		log.Error(c, "auth.register.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("register", fiber.Map{"Err": "Could not create your account. Please try again."})
	}

	log.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Redirect("/login")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
