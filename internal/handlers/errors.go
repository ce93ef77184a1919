package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/lsaserver/internal/models"
	"github.com/yourorg/lsaserver/internal/store"
)

// respondStoreError traduce la taxonomía de errores del store a HTTP.
// conflictMsg y notFoundMsg permiten mensajes específicos por operación.
func respondStoreError(c *fiber.Ctx, err error, conflictMsg, notFoundMsg string) error {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: verr.Message})
	case errors.Is(err, store.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: "ID de seña inválido"})
	case errors.Is(err, store.ErrConflict):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: conflictMsg})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Message: notFoundMsg})
	case errors.Is(err, store.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Message: "credenciales inválidas (usuario o contraseña incorrectos)"})
	}
	log.Printf("❌ store error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Message: "error interno del servidor"})
}
