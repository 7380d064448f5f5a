package route

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// Account registration must never be reachable without a session: an
// anonymous request has to bounce at the auth middleware, before the
// handler (or the database) is ever touched.
func TestRegisterRequiresAuthentication(t *testing.T) {
	app := fiber.New()
	AuthRoutes(app, nil)

	req := httptest.NewRequest("POST", "/auth/register", nil)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
