package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	UploadDriverLocal      = "local"
	UploadDriverCloudinary = "cloudinary"
)

type Config struct {
	Port               string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string
	SupabaseJWKSURL    string
	MongoDBURI         string
	MongoDBName        string
	UploadDriver       string
	UploadDir          string
	AllowedOrigins     []string
	Environment        string
	LogLevel           string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:               getEnvWithDefault("PORT", "8080"),
		SupabaseURL:        strings.TrimSuffix(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseJWKSURL:    os.Getenv("SUPABASE_JWKS_URL"),
		MongoDBURI:         os.Getenv("MONGODB_URI"),
		MongoDBName:        getEnvWithDefault("MONGODB_NAME", "coloc"),
		UploadDriver:       getEnvWithDefault("UPLOAD_DRIVER", UploadDriverLocal),
		UploadDir:          getEnvWithDefault("UPLOAD_DIR", "public/uploads"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(o))
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// Validate required fields
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	if cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.UploadDriver != UploadDriverLocal && cfg.UploadDriver != UploadDriverCloudinary {
		return nil, fmt.Errorf("UPLOAD_DRIVER must be %q or %q", UploadDriverLocal, UploadDriverCloudinary)
	}

	if cfg.SupabaseJWKSURL == "" {
		cfg.SupabaseJWKSURL = cfg.SupabaseURL + "/auth/v1/.well-known/jwks.json"
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
