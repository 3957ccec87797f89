// cmd/hourdash/main.go - Entry point
package main

import (
	"log"
	"net/http"

	"github.com/noor-latif/hourdash/internal/config"
	"github.com/noor-latif/hourdash/internal/db"
	"github.com/noor-latif/hourdash/internal/handlers"
	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/store"
	"github.com/noor-latif/hourdash/internal/targets"
)

func main() {
	cfg := config.Load()

	// Init database
	database, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()
	log.Printf("Database initialized: %s", cfg.DBPath)

	if cfg.SeedPath != "" {
		seed(database, cfg.SeedPath)
	}

	r := handlers.New(database, cfg.Title).Routes()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("HourDash starting on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// seed stores the seed file as the week config unless one already exists
func seed(database *store.DB, path string) {
	existing, err := database.GetConfig(models.RangeWeek)
	if err != nil {
		db.LogError("read week config", err)
		return
	}
	if existing != nil {
		return
	}
	raw, err := config.LoadSeed(path)
	if err != nil {
		db.LogError("load seed", err)
		return
	}
	tc := targets.Normalize(raw)
	if err := database.SaveConfig(models.RangeWeek, tc); err != nil {
		db.LogError("save seed config", err)
		return
	}
	log.Printf("[CONFIG] Seeded week config from %s (%d categories)", path, len(tc.Categories))
}
