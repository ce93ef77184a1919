package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/yourorg/lsaserver/internal/config"
	appdb "github.com/yourorg/lsaserver/internal/db"
	"github.com/yourorg/lsaserver/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("❌ no se pudo crear el directorio de subidas %q: %v", cfg.UploadDir, err)
	}

	// ============================================================================
	// DB CONNECTION
	// ============================================================================
	client, err := appdb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("❌ Error de conexión a MongoDB: %v", err)
	}
	log.Println("✅ MongoDB conectado")

	db := client.Database(cfg.DBName)
	if err := appdb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("❌ Error creando índices: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Margen sobre el límite de 5 MiB por imagen, para el resto del form.
		BodyLimit: 6 << 20,
	})
	app.Use(logger.New())
	app.Use(cors.New())

	// Las imágenes subidas se sirven de vuelta bajo /uploads
	app.Static("/uploads", cfg.UploadDir)

	routes.Register(app, db, cfg)

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("🛑 Señal de terminación recibida, cerrando servidor...")

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️  Error cerrando servidor: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("⚠️  Error cerrando conexión a MongoDB: %v", err)
		}

		log.Println("✅ Servidor cerrado correctamente")
		os.Exit(0)
	}()

	log.Printf("🌍 Servidor LSA escuchando en :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
