// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "schooladmin_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (h *AuthController) Login(c *fiber.Ctx) error          { return authService.Login(h.DB, c) }
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error    { return authService.LoginGoogle(h.DB, c) }
func (h *AuthController) Register(c *fiber.Ctx) error       { return authService.Register(h.DB, c) }
func (h *AuthController) RefreshToken(c *fiber.Ctx) error   { return authService.RefreshToken(h.DB, c) }
func (h *AuthController) Logout(c *fiber.Ctx) error         { return authService.Logout(h.DB, c) }
func (h *AuthController) ChangePassword(c *fiber.Ctx) error { return authService.ChangePassword(h.DB, c) }
func (h *AuthController) Me(c *fiber.Ctx) error             { return authService.Me(h.DB, c) }
