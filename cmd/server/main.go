package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/storeops/shift-scheduler/internal/config"
	"github.com/storeops/shift-scheduler/internal/database"
	"github.com/storeops/shift-scheduler/internal/domain/service"
	"github.com/storeops/shift-scheduler/internal/handlers"
	"github.com/storeops/shift-scheduler/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	policy, err := config.LoadPolicy(cfg.PolicyPath)
	if err != nil {
		log.Fatalf("Failed to load scheduling policy: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, policy)

	handler := handlers.New(services.Schedule)

	http.HandleFunc("/schedule/generate", handler.HandleGenerate)
	http.HandleFunc("/schedule/clear", handler.HandleClear)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
