package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lites-backend/internal/config"
	"lites-backend/pkg/database"

	"github.com/joho/godotenv"
)

const usage = `
Lites Messenger - Database CLI Tool

Usage:
  migrate [command]

Commands:
  up          Apply the schema
  seed-dev    Apply the schema and seed development data

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed-dev
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	switch command := flag.Arg(0); command {
	case "up":
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")
	case "seed-dev":
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		result, err := database.SeedDevelopment(db)
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		for _, u := range result.Users {
			log.Printf("Seeded user %s (id %d)", u.Phone, u.ID)
		}
		log.Println("Development seeding completed")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}
