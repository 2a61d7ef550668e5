package handler

import (
	"encoding/base64"
	"io"
	"log"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"facelens/ai"
	"facelens/database"
	"facelens/models"
	"facelens/storage"
)

const errorPrefix = "Failed to process image. "

// AnalyzeHandler owns the upload-and-analyze flow. Records may be nil when
// no database is configured; the response then carries only the AI result
// and the storage URL.
type AnalyzeHandler struct {
	Store   storage.BlobStore
	Records database.RecordStore
	AI      ai.Describer
}

func NewAnalyzeHandler(store storage.BlobStore, records database.RecordStore, describer ai.Describer) *AnalyzeHandler {
	return &AnalyzeHandler{
		Store:   store,
		Records: records,
		AI:      describer,
	}
}

// Upload handles POST /upload: store the image, build the prompt, ask the
// model for a description, and record the result when a database is around.
func (h *AnalyzeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file uploaded.",
		})
	}

	stylePrompt := c.FormValue("stylePrompt", ai.DefaultStylePrompt)
	language := c.FormValue("language", models.LanguageChinese)
	style := c.FormValue("style", models.StyleMild)
	analysisType := c.FormValue("analysisType", models.AnalysisTypeNormal)
	isReanalysis := c.FormValue("isReanalysis") == "true"
	analysisIDValue := c.FormValue("analysisId")

	if isReanalysis && analysisIDValue == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "analysisId is required for reanalysis.",
		})
	}
	if isReanalysis && h.Records == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No analysis records available for reanalysis.",
		})
	}

	blobFile, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": errorPrefix + err.Error(),
		})
	}
	defer blobFile.Close()

	data, err := io.ReadAll(blobFile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": errorPrefix + err.Error(),
		})
	}

	mimeType := file.Header.Get("Content-Type")
	imageBase64 := base64.StdEncoding.EncodeToString(data)

	log.Printf("[Upload] Image received: %s, MIME: %s", file.Filename, mimeType)

	var analysisID uint
	var storageURL string

	if isReanalysis {
		id, err := strconv.ParseUint(analysisIDValue, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid analysisId.",
			})
		}
		analysisID = uint(id)

		// The stored image is reused; the resent bytes only feed the AI
		// call and are not written to the blob store again.
		record, err := h.Records.FindByID(analysisID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": errorPrefix + err.Error(),
			})
		}
		if record.StorageURL != nil {
			storageURL = *record.StorageURL
		}
	} else {
		key := uniqueKey(file.Filename)
		storageURL, err = h.Store.Put(c.Context(), key, data, mimeType)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": errorPrefix + err.Error(),
			})
		}
		log.Printf("[Storage] Saved %s as %s", file.Filename, storageURL)

		if h.Records != nil {
			record := &models.Analysis{
				ImageData:    imageBase64,
				ImageName:    file.Filename,
				MimeType:     mimeType,
				StorageURL:   &storageURL,
				StylePrompt:  stylePrompt,
				Language:     language,
				Style:        style,
				AnalysisType: analysisType,
			}
			if err := h.Records.Create(record); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": errorPrefix + err.Error(),
				})
			}
			analysisID = record.ID
		}
	}

	prompt := ai.BuildPrompt(analysisType, language, stylePrompt)

	aiComment, err := h.AI.Describe(c.Context(), prompt, data, mimeType)
	if err != nil {
		if ai.IsQuotaErr(err) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":         "AI service quota exceeded. Please try again later.",
				"quotaExceeded": true,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": errorPrefix + err.Error(),
		})
	}
	log.Printf("[AI Comment] Generated for analysis %d", analysisID)

	if h.Records != nil && analysisID != 0 {
		if err := h.Records.UpdateResult(analysisID, aiComment, style, language, analysisType); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": errorPrefix + err.Error(),
			})
		}
	}

	response := fiber.Map{
		"message":   "Image processed successfully!",
		"aiComment": aiComment,
		"imageData": "data:" + mimeType + ";base64," + imageBase64,
	}
	if storageURL != "" {
		response["uploadedImageUrl"] = storageURL
	}
	if analysisID != 0 {
		response["analysisId"] = analysisID
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// uniqueKey prefixes the original filename with a random token so two
// uploads of the same file never collide in the blob store.
func uniqueKey(originalName string) string {
	return uuid.NewString() + "-" + filepath.Base(originalName)
}
