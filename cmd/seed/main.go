package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/aditrahmn/contact-management-api/config"
	"github.com/aditrahmn/contact-management-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO users (username, name, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET name = EXCLUDED.name
	`, username, "Demo User", hash); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: username=%s password=%s\n", username, password)

	var contactID int64
	if err := db.QueryRow(`
		INSERT INTO contacts (first_name, last_name, email, phone, username)
		VALUES ('Jane', 'Doe', 'jane.doe@example.com', '+628123456789', $1)
		RETURNING id
	`, username).Scan(&contactID); err != nil {
		log.Fatalf("failed to seed contact: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO addresses (street, city, province, country, postal_code, contact_id)
		VALUES ('Jl. Sudirman No. 1', 'Jakarta', 'DKI Jakarta', 'Indonesia', '10110', $1)
	`, contactID); err != nil {
		log.Fatalf("failed to seed address: %v", err)
	}
	fmt.Printf("seeded contact id=%d with one address\n", contactID)
}
