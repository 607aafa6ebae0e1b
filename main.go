package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/muhwezim78/Nashiecom-sub000/configs"
	"github.com/muhwezim78/Nashiecom-sub000/middlewares"
	"github.com/muhwezim78/Nashiecom-sub000/routes"
)

func main() {
	cfg := configs.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// DB
	configs.ConnectDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// serve uploaded images (chat attachments, product pictures)
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
