package details

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func registeredPaths(app *fiber.App) []string {
	var paths []string
	for _, r := range app.GetRoutes(true) {
		paths = append(paths, r.Path)
	}
	return paths
}

func hasPrefix(paths []string, prefix string) bool {
	for _, p := range paths {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Maintenance personnel management belongs to the super-admin surface,
// not the day-to-day admin one.
func TestMaintenanceStaffIsSuperAdminGated(t *testing.T) {
	app := fiber.New()
	AdminRoutes(app, nil)
	SuperAdminRoutes(app, nil)

	paths := registeredPaths(app)
	assert.True(t, hasPrefix(paths, "/api/sa/maintenance-staff"))
	assert.False(t, hasPrefix(paths, "/api/a/maintenance-staff"))
}

func TestAdminSurfaceKeepsDailyFeatures(t *testing.T) {
	app := fiber.New()
	AdminRoutes(app, nil)
	SuperAdminRoutes(app, nil)

	paths := registeredPaths(app)
	for _, prefix := range []string{
		"/api/a/students",
		"/api/a/grades",
		"/api/a/enrollments",
		"/api/a/equipment",
		"/api/sa/staff",
	} {
		assert.True(t, hasPrefix(paths, prefix), prefix)
	}
}
