package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"

	TransportSMTP  = "smtp"
	TransportZepto = "zepto"
)

type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string

	APIBaseURL string
	APITimeout time.Duration

	MailTransport string
	EmailUser     string
	EmailPass     string
	SMTPHost      string
	SMTPPort      int
	ZeptoAPIURL   string
	ZeptoAPIKey   string
	EmailFrom     string

	PreferenceStore string
	SQLitePath      string
	MongoDBURI      string
	MongoDBPassword string
	MongoDBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	PlaceholderCount    int

	NewsFeedURL string
	SessionTTL  time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "8080"),
		Environment:    getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000")),

		APIBaseURL: getEnvWithDefault("API_BASE_URL", "http://localhost:3001"),

		MailTransport: strings.ToLower(getEnvWithDefault("MAIL_TRANSPORT", TransportSMTP)),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
		SMTPHost:      getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		ZeptoAPIURL:   os.Getenv("ZEPTO_API_URL"),
		ZeptoAPIKey:   os.Getenv("ZEPTO_API_KEY"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),

		PreferenceStore: strings.ToLower(getEnvWithDefault("PREFERENCE_STORE", StoreMemory)),
		SQLitePath:      getEnvWithDefault("SQLITE_PATH", "eventsphere.db"),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		MongoDBName:     getEnvWithDefault("MONGODB_DB", "eventsphere"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		NewsFeedURL: os.Getenv("NEWS_FEED_URL"),
	}

	var err error
	if cfg.APITimeout, err = getDuration("API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.PlaceholderCount, err = getInt("CLOUDINARY_PLACEHOLDERS", 8); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the selected backends depend on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute url, got %q", c.APIBaseURL)
	}

	switch c.MailTransport {
	case TransportSMTP:
		if c.EmailUser == "" || c.EmailPass == "" {
			return fmt.Errorf("EMAIL_USER and EMAIL_PASS are required for the smtp transport")
		}
	case TransportZepto:
		if c.ZeptoAPIURL == "" || c.ZeptoAPIKey == "" || c.EmailFrom == "" {
			return fmt.Errorf("ZEPTO_API_URL, ZEPTO_API_KEY and EMAIL_FROM are required for the zepto transport")
		}
	default:
		return fmt.Errorf("unsupported MAIL_TRANSPORT: %s (expected smtp, zepto)", c.MailTransport)
	}

	switch c.PreferenceStore {
	case StoreMemory:
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	case StoreMongo:
		if c.MongoDBURI == "" {
			return fmt.Errorf("MONGODB_URI is required for the mongo store")
		}
	default:
		return fmt.Errorf("unsupported PREFERENCE_STORE: %s (expected memory, sqlite, mongo)", c.PreferenceStore)
	}
	return nil
}

func (c *Config) HasCloudinary() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, raw)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
