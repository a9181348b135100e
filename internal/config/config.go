package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"ecocollect-backend/internal/models"
)

// Config holds all configuration for the application
type Config struct {
	Port        string
	Environment string // "development" or "production"
	DBPath      string
	UploadDir   string
	TokenSecret string

	// Admins is the fixed allow-list of administrator credentials,
	// injected at process start. It is never stored in the database.
	Admins []models.Admin

	// Optional AI assistant upstream. Chat endpoints are disabled when empty.
	ChatUpstreamURL string
	ChatAPIKey      string

	// Optional OIDC single sign-on. Disabled when IssuerURL is empty.
	OIDC OIDCConfig

	// TLS enables HTTPS with a self-signed certificate kept under CertDir.
	TLS     bool
	CertDir string
}

// OIDCConfig holds the settings for the optional SSO login flow
type OIDCConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnv("ECOCOLLECT_PORT", "8080"),
		Environment:     getEnv("ECOCOLLECT_ENV", "development"),
		DBPath:          getEnv("ECOCOLLECT_DB_PATH", "./ecocollect.db"),
		UploadDir:       getEnv("ECOCOLLECT_UPLOAD_DIR", "./uploads"),
		TokenSecret:     os.Getenv("ECOCOLLECT_TOKEN_SECRET"),
		ChatUpstreamURL: os.Getenv("ECOCOLLECT_CHAT_UPSTREAM"),
		ChatAPIKey:      os.Getenv("ECOCOLLECT_CHAT_API_KEY"),
		TLS:             getEnv("ECOCOLLECT_TLS", "") == "true",
		CertDir:         getEnv("ECOCOLLECT_CERT_DIR", "./certs"),
		OIDC: OIDCConfig{
			IssuerURL:    os.Getenv("ECOCOLLECT_OIDC_ISSUER"),
			ClientID:     os.Getenv("ECOCOLLECT_OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("ECOCOLLECT_OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("ECOCOLLECT_OIDC_REDIRECT_URL"),
		},
	}

	if cfg.TokenSecret == "" {
		return nil, errors.New("ECOCOLLECT_TOKEN_SECRET environment variable is required")
	}

	admins, err := parseAdmins(os.Getenv("ECOCOLLECT_ADMINS"))
	if err != nil {
		return nil, err
	}
	cfg.Admins = admins

	return cfg, nil
}

// Production reports whether the server runs in production mode.
// Session cookies are only marked Secure in production.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// parseAdmins decodes the admin allow-list from its JSON form:
// [{"id":1,"email":"ops@example.com","password":"...","name":"Ops"}]
func parseAdmins(raw string) ([]models.Admin, error) {
	if raw == "" {
		return nil, nil
	}

	var admins []models.Admin
	if err := json.Unmarshal([]byte(raw), &admins); err != nil {
		return nil, fmt.Errorf("invalid ECOCOLLECT_ADMINS value: %w", err)
	}

	for i, a := range admins {
		if a.Email == "" || a.Password == "" {
			return nil, fmt.Errorf("admin entry %d is missing email or password", i)
		}
	}

	return admins, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
