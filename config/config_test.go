package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "secret")
	t.Setenv("CORS_ORIGINS", " http://localhost:3000 ,,https://desk.example.com")
	t.Setenv("TOKEN_TTL_MINUTES", "30")

	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Port != "8083" || s.Timezone != "Asia/Tokyo" || s.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if len(s.CORSOrigins) != 2 || s.CORSOrigins[1] != "https://desk.example.com" {
		t.Fatalf("unexpected origins %v", s.CORSOrigins)
	}
	if s.Location().String() != "Asia/Tokyo" {
		t.Fatalf("unexpected location %s", s.Location())
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without token secret")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "secret")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}

	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("TOKEN_TTL_MINUTES", "-5")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative ttl")
	}
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	s := &Settings{DatabaseURL: "postgres://u:p@db/hotel", DBHost: "ignored"}
	if s.DSN() != "postgres://u:p@db/hotel" {
		t.Fatalf("unexpected dsn %s", s.DSN())
	}
	s.DatabaseURL = ""
	s.DBHost, s.DBUser, s.DBName, s.DBPort, s.DBSSLMode = "localhost", "postgres", "hotel", "5432", "disable"
	want := "host=localhost user=postgres password= dbname=hotel port=5432 sslmode=disable TimeZone=UTC"
	if s.DSN() != want {
		t.Fatalf("got %q", s.DSN())
	}
}
