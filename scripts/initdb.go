// Command initdb creates the database schema and seeds the first admin
// account. Run it once against a fresh database:
//
//	go run ./scripts
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	last_login    TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS sessions (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id          UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	language         TEXT NOT NULL,
	level            TEXT NOT NULL,
	started_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	ended_at         TIMESTAMPTZ,
	is_active        BOOLEAN NOT NULL DEFAULT TRUE,
	message_count    INTEGER NOT NULL DEFAULT 0,
	duration_minutes INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS messages (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	role       TEXT NOT NULL,
	text       TEXT NOT NULL,
	language   TEXT NOT NULL,
	level      TEXT NOT NULL,
	timestamp  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_sessions_user_id   ON sessions(user_id);
CREATE INDEX IF NOT EXISTS idx_sessions_is_active ON sessions(user_id, is_active);
CREATE INDEX IF NOT EXISTS idx_messages_session   ON messages(session_id, timestamp);
CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON messages(timestamp);
`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	db, err := sql.Open("pgx", dsn())
	if err != nil {
		log.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("schema creation failed: %v", err)
	}
	log.Println("schema created")

	if err := seedAdmin(db); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}
}

// seedAdmin inserts the initial admin account unless one already exists.
func seedAdmin(db *sql.DB) error {
	email := env("ADMIN_EMAIL", "admin@langmatch.local")
	password := env("ADMIN_PASSWORD", "cambiame123")

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return err
	}
	if exists {
		log.Printf("admin %s already present, skipping seed", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, 'admin')`,
		"Administrador", email, string(hash),
	)
	if err != nil {
		return err
	}

	log.Printf("admin %s created", email)
	return nil
}

func dsn() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		env("PG_HOST", "localhost"),
		env("PG_PORT", "5432"),
		env("PG_USER", "postgres"),
		os.Getenv("PG_PASSWORD"),
		env("PG_DATABASE", "langmatch"),
		env("PG_SSL_MODE", "disable"),
	)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
