package testutil

import (
	"database/sql"
	"os"
	"testing"

	"notesapi/internal/config"
	"notesapi/internal/db"
)

func OpenTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping postgres test")
	}
	conn, err := db.Open(config.DatabaseConfig{
		Host:     host,
		Port:     5432,
		User:     "notesapi",
		Password: "notesapi_pass",
		DBName:   "notesapi_test",
		SSLMode:  "disable",
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(conn); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	for _, table := range []string{"note_tags", "notes", "tags", "revoked_tokens", "users"} {
		if _, err := conn.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("reset table %s: %v", table, err)
		}
	}
	return conn, func() {
		_ = conn.Close()
	}
}
