package main

import (
	"log"
	"net/http"
	"os"

	"rental_manager/internal/cache"
	"rental_manager/internal/config"
	"rental_manager/internal/logger"
	"rental_manager/internal/middleware"
	"rental_manager/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Optional Redis cache for report payloads
	cache.Init()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at :" + port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
