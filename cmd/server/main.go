package main

import (
	"log"

	"github.com/Alecrity/tough-as-a-tank-final/internal/config"
	"github.com/Alecrity/tough-as-a-tank-final/internal/database"
	"github.com/Alecrity/tough-as-a-tank-final/internal/metrics"
	"github.com/Alecrity/tough-as-a-tank-final/internal/router"

	_ "github.com/Alecrity/tough-as-a-tank-final/docs"

	"github.com/joho/godotenv"
)

// @title           Tough as a Tank API
// @version         1.0
// @description     Registration, scoring and leaderboard API for the Tough as a Tank grip-strength challenge
// @host            localhost:3000
// @BasePath        /

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	metrics.Register()

	r := router.New(db, cfg)

	log.Printf("server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
