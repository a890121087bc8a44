package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/devconnect/devconnect-api/config"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// Seeds a demo account with a profile and a post for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@devconnect.local"
	password := "password123"
	name := "Demo Developer"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, helpers.GravatarURL(email)).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	skills, _ := json.Marshal([]string{"Go", "PostgreSQL", "Redis"})
	if _, err := db.Exec(`
		INSERT INTO profiles (user_id, status, bio, location, skills)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET status = EXCLUDED.status
	`, userID, "Backend Developer", "Demo account seeded for local development", "Berlin", skills); err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Println("seeded profile")

	if _, err := db.Exec(`
		INSERT INTO posts (user_id, name, avatar_url, text)
		VALUES ($1, $2, $3, $4)
	`, userID, name, helpers.GravatarURL(email), "Hello from the seeded demo account"); err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Println("seeded post")
}
