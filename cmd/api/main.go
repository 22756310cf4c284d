package main

import (
	"net/http"
	"os"
	"time"

	"pets-users-service/internal/platform/logger"
	"pets-users-service/internal/router"

	_ "pets-users-service/docs"
)

// @title pets-users-service API
// @version 1.0
// @description Servicios CRUD de mascotas y usuarios con autenticación por token bearer.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Log: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
