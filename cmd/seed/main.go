package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/alam-gir/agency/config"
	"github.com/alam-gir/agency/pkg/helpers"
)

// Seeds the initial super-admin account. Email and password come from
// SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD with local defaults.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := envOr("SEED_ADMIN_EMAIL", "admin@localhost")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme123")
	name := envOr("SEED_ADMIN_NAME", "Super Admin")
	phone := envOr("SEED_ADMIN_PHONE", "01700000000")

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, 'super-admin')
		ON CONFLICT (email) DO UPDATE SET role = 'super-admin', updated_at = now()
		RETURNING id
	`, name, email, phone, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed super-admin: %v", err)
	}
	fmt.Printf("seeded super-admin: id=%s email=%s\n", id, email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
