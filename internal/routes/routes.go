package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yourorg/lsaserver/internal/auth"
	"github.com/yourorg/lsaserver/internal/config"
	"github.com/yourorg/lsaserver/internal/handlers"
	"github.com/yourorg/lsaserver/internal/middleware"
	"github.com/yourorg/lsaserver/internal/store"
)

// Register monta todas las rutas de la API sobre la app.
func Register(app *fiber.App, db *mongo.Database, cfg *config.Config) {
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handlers.NewAuthHandler(store.NewUserStore(db), tokens)
	signHandler := handlers.NewSignHandler(store.NewSignStore(db))
	healthHandler := handlers.NewHealthHandler(db)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)

	// Autenticación: pública, con rate limiting estricto
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimiter())
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo de señas
	signs := api.Group("/signs")
	signs.Use(middleware.APIRateLimiter())

	// Lectura pública
	signs.Get("/", signHandler.List)
	signs.Get("/:id", signHandler.GetByID)

	// Escritura protegida por JWT; el create acepta imagen multipart
	protect := middleware.Protect(tokens)
	signs.Post("/", protect, middleware.ImageUpload(cfg.UploadDir), signHandler.Create)
	signs.Put("/:id", protect, signHandler.Update)
	signs.Delete("/:id", protect, signHandler.Delete)
}
