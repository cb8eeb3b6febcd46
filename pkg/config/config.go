package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port               string   `yaml:"port" toml:"port"`
	DatabaseURL        string   `yaml:"database_url" toml:"database_url"`
	AppEnv             string   `yaml:"app_env" toml:"app_env"`
	LogLevel           string   `yaml:"log_level" toml:"log_level"`
	BaseURL            string   `yaml:"base_url" toml:"base_url"`
	GoogleClientID     string   `yaml:"google_client_id" toml:"google_client_id"`
	GoogleClientSecret string   `yaml:"google_client_secret" toml:"google_client_secret"`
	GoogleRedirectURL  string   `yaml:"google_redirect_url" toml:"google_redirect_url"`
	JWTSecret          string   `yaml:"jwt_secret" toml:"jwt_secret"`
	FrontendURL        string   `yaml:"frontend_url" toml:"frontend_url"`
	AllowedEmails      []string `yaml:"allowed_emails" toml:"allowed_emails"`
	AllowedOrigins     []string `yaml:"allowed_origins" toml:"allowed_origins"`
	RateLimitRPS       float64  `yaml:"rate_limit_rps" toml:"rate_limit_rps"`
	RateLimitBurst     int      `yaml:"rate_limit_burst" toml:"rate_limit_burst"`
	JobQueueSize       int      `yaml:"job_queue_size" toml:"job_queue_size"`
}

func defaults() *Config {
	return &Config{
		Port:              "8080",
		DatabaseURL:       "file:coins.sqlite",
		AppEnv:            "local",
		LogLevel:          "",
		BaseURL:           "http://localhost:8080",
		GoogleRedirectURL: "http://localhost:8080/auth/google/callback",
		JWTSecret:         "secret",
		FrontendURL:       "http://localhost:8080/",
		AllowedOrigins:    []string{"http://localhost:5173"},
		RateLimitRPS:      20,
		RateLimitBurst:    40,
		JobQueueSize:      64,
	}
}

// Load builds the configuration from defaults, then CONFIG_FILE (YAML or TOML),
// then the environment, each layer overriding the previous one.
func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"PORT":                 &cfg.Port,
		"DATABASE_URL":         &cfg.DatabaseURL,
		"APP_ENV":              &cfg.AppEnv,
		"LOG_LEVEL":            &cfg.LogLevel,
		"BASE_URL":             &cfg.BaseURL,
		"GOOGLE_CLIENT_ID":     &cfg.GoogleClientID,
		"GOOGLE_CLIENT_SECRET": &cfg.GoogleClientSecret,
		"GOOGLE_REDIRECT_URL":  &cfg.GoogleRedirectURL,
		"JWT_SECRET":           &cfg.JWTSecret,
		"FRONTEND_URL":         &cfg.FrontendURL,
	}
	for key, dst := range strs {
		*dst = getEnv(key, *dst)
	}

	if v, ok := os.LookupEnv("ALLOWED_EMAILS"); ok {
		cfg.AllowedEmails = splitList(v)
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("RATE_LIMIT_RPS"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = f
	}
	ints := map[string]*int{
		"RATE_LIMIT_BURST": &cfg.RateLimitBurst,
		"JOB_QUEUE_SIZE":   &cfg.JobQueueSize,
	}
	for key, dst := range ints {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}
	return nil
}

// EmailAllowed reports whether a signed-in account may use the API.
// An empty allow list admits everyone.
func (c *Config) EmailAllowed(email string) bool {
	if len(c.AllowedEmails) == 0 {
		return true
	}
	for _, e := range c.AllowedEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
