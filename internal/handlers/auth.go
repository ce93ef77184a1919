package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/lsaserver/internal/auth"
	"github.com/yourorg/lsaserver/internal/models"
	"github.com/yourorg/lsaserver/internal/store"
)

type AuthHandler struct {
	users  *store.UserStore
	tokens *auth.TokenService
}

func NewAuthHandler(users *store.UserStore, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Register maneja POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: "cuerpo de la solicitud inválido"})
	}

	user, err := h.users.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondStoreError(c, err, "el nombre de usuario ya está en uso", "")
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		log.Printf("❌ error firmando token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Message: "error del servidor al registrar el usuario"})
	}

	c.Set("Cache-Control", "no-store")
	return c.Status(fiber.StatusCreated).JSON(models.AuthResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Token:    token,
	})
}

// Login maneja POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Message: "cuerpo de la solicitud inválido"})
	}

	user, err := h.users.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondStoreError(c, err, "", "")
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		log.Printf("❌ error firmando token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Message: "error del servidor al iniciar sesión"})
	}

	c.Set("Cache-Control", "no-store")
	return c.Status(fiber.StatusOK).JSON(models.AuthResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Token:    token,
	})
}
