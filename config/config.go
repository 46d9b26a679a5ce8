package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Version string
	Env     string // development, staging, production
	Host    string
	Port    string
	GinMode string

	// Storage backend: postgres or memory
	StoreDriver string

	// Database
	DatabaseURL   string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration

	// Migrations
	MigrationsDir string
	AutoMigrate   bool

	// Redis
	RedisURL string
	CacheTTL time.Duration

	// Rate limiting (per IP, per minute; 0 disables)
	RateLimitPerMinute  int
	RateLimitBypassPriv bool

	// CORS
	CORSAllowedOrigins string // comma-separated

	// RabbitMQ (achievement notifications); empty URL disables publishing
	RabbitMQURL        string
	RabbitMQEmailQueue string

	// Mailgun
	MailgunDomain   string
	MailgunAPIKey   string
	MailgunSender   string
	MailSendEnabled bool

	// Elasticsearch; empty addrs disables indexing
	ElasticsearchAddrs string // comma-separated
	ElasticsearchUser  string
	ElasticsearchPass  string
	ESProfilesIndex    string

	// Seeding
	SeedProfiles int

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "yomu-engine"),
		Version: getenv("APP_VERSION", "0.1.0"),
		Env:     getenv("APP_ENV", "development"),
		Host:    getenv("APP_HOST", "0.0.0.0"),
		Port:    getenv("APP_PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		StoreDriver: strings.ToLower(getenv("STORE_DRIVER", StorePostgres)),

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 20)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 5)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),
		AutoMigrate:   getbool("AUTO_MIGRATE", true),

		RedisURL: os.Getenv("REDIS_URL"),
		CacheTTL: getdur("CACHE_TTL", 5*time.Minute),

		RateLimitPerMinute:  getint("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBypassPriv: getbool("RATE_LIMIT_BYPASS_PRIVATE", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "*"),

		RabbitMQURL:        getenv("RABBITMQ_URL", ""),
		RabbitMQEmailQueue: getenv("RABBITMQ_EMAIL_QUEUE", "achievement_emails"),

		MailgunDomain:   getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:   getenv("MAILGUN_API_KEY", ""),
		MailgunSender:   getenv("MAILGUN_SENDER", ""),
		MailSendEnabled: getbool("MAIL_SEND_ENABLED", false),

		ElasticsearchAddrs: getenv("ELASTICSEARCH_ADDRS", ""),
		ElasticsearchUser:  getenv("ELASTICSEARCH_USERNAME", ""),
		ElasticsearchPass:  getenv("ELASTICSEARCH_PASSWORD", ""),
		ESProfilesIndex:    getenv("ES_PROFILES_INDEX", "profiles"),

		SeedProfiles: getint("SEED_PROFILES", 10),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// Validate reports missing or malformed settings. A failure is fatal at startup.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case StorePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("missing required environment variable: DATABASE_URL"))
		}
		if c.RedisURL == "" {
			errs = append(errs, errors.New("missing required environment variable: REDIS_URL"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StorePostgres, StoreMemory, c.StoreDriver))
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a port number, got %q", c.Port))
	}
	if c.Host == "" {
		errs = append(errs, errors.New("APP_HOST must not be empty"))
	}
	if c.DBMinConns > c.DBMaxConns {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns))
	}
	return errors.Join(errs...)
}

// Addr returns host:port for the HTTP listener.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// ESAddrs returns Elasticsearch addresses as a slice
func (c *Config) ESAddrs() []string {
	return splitList(c.ElasticsearchAddrs)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
