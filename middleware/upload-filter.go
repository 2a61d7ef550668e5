package middleware

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadFilter rejects disallowed image files before the upload handler
// runs. Both the declared MIME type and the file extension must pass. A
// request without a file passes through so the handler can report it.
func UploadFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return c.Next()
		}

		mimeType := file.Header.Get("Content-Type")
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedMimeTypes[mimeType] || !allowedExtensions[ext] {
			log.Printf("[Upload] Rejected file %s (MIME: %s)", file.Filename, mimeType)
			return c.Status(fiber.StatusBadRequest).SendString("Unsupported file type")
		}

		return c.Next()
	}
}
