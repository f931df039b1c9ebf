package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"heatwise-api/internal/config"
	"heatwise-api/internal/database"

	"github.com/joho/godotenv"
)

// Applies every migrations/*.sql file in lexical order. Statements are
// idempotent (CREATE TABLE IF NOT EXISTS), so re-running is safe.
func main() {
	_ = godotenv.Load()

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		log.Fatalf("failed to list migrations: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no .sql files found under %s", dir)
	}
	sort.Strings(files)

	cfg := config.Load()
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("cannot connect to database: %v", err)
	}
	defer db.Close()

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("failed to read %s: %v", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("failed to apply %s: %v", file, err)
		}
		log.Printf("applied %s", file)
	}
}
