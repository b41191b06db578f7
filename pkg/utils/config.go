package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
	AdminEmails []string
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("CUASHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("CUASHUB_JWT_ISSUER")
	if issuer == "" {
		issuer = "cuashub"
	}

	duration := 24 * time.Hour
	if ttl := os.Getenv("CUASHUB_JWT_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			duration = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: duration,
		AdminEmails: loadAdminEmails(),
	}
}

// loadAdminEmails reads the comma-separated admin list. The defaults match
// the accounts the portal shipped with.
func loadAdminEmails() []string {
	raw := os.Getenv("CUASHUB_ADMIN_EMAILS")
	if raw == "" {
		return []string{"admin@military.mil", "admin@navy.mil", "admin@army.mil"}
	}
	var out []string
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

type ServerConfig struct {
	Addr     string
	SeedPath string // optional override for the embedded dataset
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("CUASHUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return ServerConfig{
		Addr:     addr,
		SeedPath: os.Getenv("CUASHUB_SEED_PATH"),
	}
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func LoadGeminiConfig() GeminiConfig {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return GeminiConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  model,
	}
}
