package Controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

const featuredImageDir = "FeaturedImages"

// UploadFeaturedImage stores a blog featured image and writes a resized
// thumbnail next to it. The returned paths are what the create/update
// actions expect in featured_image.
func UploadFeaturedImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file is required"})
	}

	if err := os.MkdirAll(featuredImageDir, 0755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create upload directory"})
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	imagePath := filepath.Join(featuredImageDir, filename)
	if err := ctx.SaveFile(file, imagePath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save image"})
	}

	img, err := imaging.Open(imagePath)
	if err != nil {
		os.Remove(imagePath)
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Uploaded file is not a valid image"})
	}

	// Width-bound thumbnail, height keeps the aspect ratio
	thumb := imaging.Resize(img, 400, 0, imaging.Lanczos)
	thumbPath := filepath.Join(featuredImageDir, "thumb_"+filename)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save thumbnail"})
	}

	return ctx.JSON(fiber.Map{
		"success":   true,
		"image":     "/" + featuredImageDir + "/" + filename,
		"thumbnail": "/" + featuredImageDir + "/thumb_" + filename,
	})
}
