// Command seed loads the reference counterparty dataset into PostgreSQL.
//
// Run migrations first, then:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/securebank/fraudscore/internal/profile"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := profile.NewPostgresStore(db)
	profiles := profile.ReferenceProfiles()

	if err := store.SeedReference(ctx, profiles); err != nil {
		log.Fatalf("Failed to seed profiles: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to verify seed: %v", err)
	}

	log.Printf("Seeded %d reference profiles (%d rows in table)", len(profiles), count)
}
