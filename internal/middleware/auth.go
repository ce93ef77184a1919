package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/lsaserver/internal/auth"
	"github.com/yourorg/lsaserver/internal/models"
)

// LocalUserID es la clave de c.Locals bajo la que Protect guarda el id
// del usuario autenticado.
const LocalUserID = "userID"

// Protect exige un token bearer válido para continuar. Cada salida de error
// responde exactamente una vez y retorna de inmediato.
func Protect(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Message: "no autorizado, token no encontrado en el encabezado",
			})
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Message: "no autorizado, token inválido o expirado",
			})
		}

		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}
