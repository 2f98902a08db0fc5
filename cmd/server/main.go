package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/internal/handlers"
	"github.com/nori1432/Laws-sub002/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using process environment")
	}

	config.LoadJWTKey()
	config.ConnectDB()
	config.ConnectRedis()
	if err := config.InitGemini(); err != nil {
		slog.Warn("Schedule suggestions disabled", "reason", err)
	}

	go handlers.LiveHub.Run()

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("Starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
