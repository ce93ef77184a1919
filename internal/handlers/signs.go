package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/lsaserver/internal/middleware"
	"github.com/yourorg/lsaserver/internal/models"
	"github.com/yourorg/lsaserver/internal/store"
)

type SignHandler struct {
	signs *store.SignStore
}

func NewSignHandler(signs *store.SignStore) *SignHandler {
	return &SignHandler{signs: signs}
}

// List maneja GET /api/signs con filtros por categoría, búsqueda por nombre
// (insensible a mayúsculas) y ordenamiento.
func (h *SignHandler) List(c *fiber.Ctx) error {
	filter := store.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	signs, err := h.signs.List(c.Context(), filter)
	if err != nil {
		return respondStoreError(c, err, "", "")
	}
	return c.JSON(signs)
}

// GetByID maneja GET /api/signs/:id.
func (h *SignHandler) GetByID(c *fiber.Ctx) error {
	sign, err := h.signs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondStoreError(c, err, "", "Seña no encontrada")
	}
	return c.JSON(sign)
}

// Create maneja POST /api/signs. Si el middleware de subida guardó una
// imagen, su ruta reemplaza cualquier imageUrl del cuerpo.
func (h *SignHandler) Create(c *fiber.Ctx) error {
	var req models.CreateSignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: "cuerpo de la solicitud inválido"})
	}

	if path, ok := c.Locals(middleware.LocalImagePath).(string); ok && path != "" {
		req.ImageURL = path
	}

	sign, err := h.signs.Create(c.Context(), req)
	if err != nil {
		return respondStoreError(c, err, "ya existe una seña con este nombre", "")
	}
	return c.Status(fiber.StatusCreated).JSON(sign)
}

// Update maneja PUT /api/signs/:id. Solo los campos presentes en el cuerpo
// se modifican; el patch se valida completo antes de aplicar nada.
func (h *SignHandler) Update(c *fiber.Ctx) error {
	var patch models.SignPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: "cuerpo de la solicitud inválido"})
	}

	sign, err := h.signs.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return respondStoreError(c, err, "ya existe otra seña con ese nombre", "Seña no encontrada para actualizar")
	}
	return c.JSON(sign)
}

// Delete maneja DELETE /api/signs/:id.
func (h *SignHandler) Delete(c *fiber.Ctx) error {
	if err := h.signs.Delete(c.Context(), c.Params("id")); err != nil {
		return respondStoreError(c, err, "", "Seña no encontrada para eliminar")
	}
	return c.JSON(models.MessageResponse{Message: "Seña eliminada correctamente"})
}
