package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds all environment variables for the booking service.
type Config struct {
	Port           string   // HTTP listen port (default: 5000)
	MongoURL       string   // Full MongoDB connection URI
	DBName         string   // Database name (default: carDoctorDB)
	TokenSecret    string   // HMAC secret for signing access tokens
	Production     bool     // Runtime mode; controls cookie attributes
	AllowedOrigins []string // CORS allowlist for credentialed requests
}

// LoadConfig loads environment variables into a Config struct and validates them.
// MONGO_URL takes precedence; otherwise the URI is assembled from DB_USER,
// DB_PASS and DB_HOST the way the Atlas connection string expects.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBName:      os.Getenv("DB_NAME"),
		TokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		Production:  os.Getenv("APP_ENV") == "production",
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "carDoctorDB"
	}

	if cfg.MongoURL == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		host := os.Getenv("DB_HOST")
		if user == "" || pass == "" || host == "" {
			return nil, fmt.Errorf("either MONGO_URL or DB_USER, DB_PASS and DB_HOST are required")
		}
		cfg.MongoURL = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			url.QueryEscape(user), url.QueryEscape(pass), host)
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(strings.TrimSuffix(o, "/")))
		}
	} else {
		cfg.AllowedOrigins = []string{
			"https://car-doctor-af2bc.web.app",
			"https://car-doctor-af2bc.firebaseapp.com",
		}
	}

	return cfg, nil
}
