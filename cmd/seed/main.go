package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Japacho1/tasky/internal/infrastructure/clients/postgres"
	"github.com/Japacho1/tasky/pkg/config"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		f_name TEXT NOT NULL,
		l_name TEXT NOT NULL,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('requester', 'provider')),
		current_town TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		rating DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS provider_services (
		provider_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		service_id UUID NOT NULL REFERENCES services(id) ON DELETE CASCADE,
		PRIMARY KEY (provider_id, service_id)
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		id UUID PRIMARY KEY,
		requester_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		provider_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		service_id UUID NOT NULL REFERENCES services(id),
		status TEXT NOT NULL CHECK (status IN ('pending', 'accepted')),
		request_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS provider_ratings (
		id UUID PRIMARY KEY,
		provider_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		requester_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_provider_status ON requests (provider_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_requester ON requests (requester_id)`,
	`CREATE INDEX IF NOT EXISTS idx_provider_ratings_provider ON provider_ratings (provider_id)`,
	`CREATE INDEX IF NOT EXISTS idx_users_current_town ON users (current_town)`,
}

var catalog = []string{
	"Plumbing",
	"Electrical Repair",
	"House Cleaning",
	"Gardening",
	"Carpentry",
	"Painting",
	"Appliance Repair",
	"Moving Help",
	"Tutoring",
	"Babysitting",
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				provider_ratings,
				requests,
				provider_services,
				services,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	// 1. Create schema
	for _, stmt := range schema {
		if _, err := pgClient.DB().ExecContext(ctx, stmt); err != nil {
			log.Fatalf("Failed to apply schema: %v", err)
		}
	}
	log.Println("Schema applied")

	// 2. Seed the service catalog. Re-running is safe: existing names are
	// left untouched.
	for _, name := range catalog {
		_, err := pgClient.DB().ExecContext(ctx,
			`INSERT INTO services (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			uuid.New().String(), name,
		)
		if err != nil {
			log.Printf("Failed to seed service %s: %v", name, err)
		}
	}
	log.Printf("Seeded %d catalog services", len(catalog))
}
