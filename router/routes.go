package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	handler "facelens/handlers"
	"facelens/middleware"
)

// SetupRoutes wires the front-end page, the stored-file route and the
// upload endpoint. uploadsDir is empty for remote storage backends, which
// serve files from their own URLs.
func SetupRoutes(app *fiber.App, h *handler.AnalyzeHandler, uploadsDir string) {
	app.Use(logger.New())

	app.Static("/", "./static")
	if uploadsDir != "" {
		app.Static("/uploads", uploadsDir)
	}

	app.Post("/upload", middleware.UploadFilter(), h.Upload)
}
