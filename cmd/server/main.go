package main

import (
	"kinbea-inventory/internal/config"
	"kinbea-inventory/internal/database"
	"kinbea-inventory/internal/handlers"
)

func main() {
	cfg := config.Load()
	log := config.GetLogger()

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	srv := handlers.NewServer(cfg, db, log)

	if cfg.RegistrationKey == "" {
		log.Warn("REGISTRATION_KEY not set, registration is open")
	}

	log.WithField("port", cfg.Port).Info("server starting")
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}
