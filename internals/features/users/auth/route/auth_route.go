// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/constants"
	authController "schooladmin_backend/internals/features/users/auth/controller"
	"schooladmin_backend/internals/middlewares"
	authMiddleware "schooladmin_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	public := app.Group("/auth")
	public.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	public.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	public.Post("/refresh-token", ctl.RefreshToken)

	private := app.Group("/auth", authMiddleware.AuthMiddleware(db))
	private.Post("/logout", ctl.Logout)
	private.Post("/change-password", ctl.ChangePassword)
	private.Get("/me", ctl.Me)

	// account creation is reserved for super admins
	private.Post("/register",
		middlewares.RegisterRateLimiter(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorSuperAdmin("account registration"),
			constants.SuperAdminOnly...,
		),
		ctl.Register,
	)
}
