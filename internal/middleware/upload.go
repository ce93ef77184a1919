package middleware

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yourorg/lsaserver/internal/models"
)

// LocalImagePath es la clave de c.Locals con la ruta pública de la imagen
// subida en este request, si la hubo.
const LocalImagePath = "uploadedImagePath"

// MaxImageSize es el tamaño máximo aceptado para una imagen (5 MiB).
const MaxImageSize = 5 << 20

// uploadFilename genera un nombre único: <stem>-<timestamp-ms><ext>.
func uploadFilename(original string, now time.Time) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" || stem == "." {
		stem = uuid.NewString()
	}
	return fmt.Sprintf("%s-%d%s", stem, now.UnixMilli(), ext)
}

// ImageUpload procesa el campo multipart "image". Un archivo que no sea
// imagen se ignora en silencio (el caller puede mandar imageUrl en su lugar);
// uno que exceda MaxImageSize rechaza el request. El archivo aceptado se
// guarda en uploadDir y su ruta pública queda en c.Locals(LocalImagePath).
func ImageUpload(uploadDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			// Sin archivo: el request sigue siendo válido.
			return c.Next()
		}

		if !strings.HasPrefix(file.Header.Get(fiber.HeaderContentType), "image/") {
			log.Printf("upload: campo image ignorado (content-type %q)", file.Header.Get(fiber.HeaderContentType))
			return c.Next()
		}

		if file.Size > MaxImageSize {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Message: "la imagen supera el tamaño máximo de 5 MB",
			})
		}

		name := uploadFilename(file.Filename, time.Now())
		if err := c.SaveFile(file, filepath.Join(uploadDir, name)); err != nil {
			log.Printf("upload: error guardando %s: %v", name, err)
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
				Message: "error al guardar la imagen",
			})
		}

		c.Locals(LocalImagePath, "/uploads/"+name)
		return c.Next()
	}
}
