package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yourorg/lsaserver/internal/config"
	appdb "github.com/yourorg/lsaserver/internal/db"
	"github.com/yourorg/lsaserver/internal/models"
	"github.com/yourorg/lsaserver/internal/store"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("==== LSA Catalog CLI ====")
		fmt.Println("1) Health check API")
		fmt.Println("2) Seed database (admin user + señas de ejemplo)")
		fmt.Println("3) Exit")
		fmt.Print("Select option: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)
		switch choice {
		case "1":
			doHealthCheck()
		case "2":
			doSeed()
		case "3":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Invalid option")
		}
		fmt.Println()
	}
}

func doHealthCheck() {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://127.0.0.1:5000"
	}
	url := strings.TrimRight(base, "/") + "/api/health"
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Health: ERROR:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("Health status:", resp.Status)
}

func doSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Println("config:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := appdb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Println("mongo connect:", err)
		return
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DBName)
	if err := appdb.EnsureIndexes(ctx, db); err != nil {
		log.Println("ensure indexes:", err)
		return
	}

	users := store.NewUserStore(db)
	if _, err := users.Register(ctx, "admin", "admin123"); err != nil {
		fmt.Println("usuario admin:", err)
	} else {
		fmt.Println("usuario admin creado (password: admin123)")
	}

	signs := store.NewSignStore(db)
	samples := []models.CreateSignRequest{
		{Name: "Hola", Category: models.CategorySaludos, Description: "Saludo básico"},
		{Name: "A", Category: models.CategoryAbecedario},
		{Name: "Uno", Category: models.CategoryNumeros},
	}
	for _, s := range samples {
		if _, err := signs.Create(ctx, s); err != nil {
			fmt.Printf("seña %q: %v\n", s.Name, err)
		} else {
			fmt.Printf("seña %q creada\n", s.Name)
		}
	}
}
