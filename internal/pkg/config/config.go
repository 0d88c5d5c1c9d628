package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Engine EngineConfig
	Remote RemoteConfig
	Redis  RedisConfig

	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// EngineConfig holds availability engine policy.
type EngineConfig struct {
	DisplayTimeZone      string `envconfig:"DISPLAY_TIMEZONE" default:"UTC"`
	GuardBookedMutations bool   `envconfig:"GUARD_BOOKED_MUTATIONS" default:"true"`
	// postgres | remote
	StoreBackend string `envconfig:"STORE_BACKEND" default:"postgres"`
}

type RemoteConfig struct {
	BaseURL string        `envconfig:"REMOTE_BASE_URL"`
	Timeout time.Duration `envconfig:"REMOTE_TIMEOUT" default:"10s"`
}

// RedisConfig enables the session defaults cache when Addr is set.
type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	DefaultsTTL time.Duration `envconfig:"DEFAULTS_CACHE_TTL" default:"10m"`
}

// RateLimitConfig throttles each mentor. PerMinute 0 disables limiting.
type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"200"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"50"`
}

const (
	StoreBackendPostgres = "postgres"
	StoreBackendRemote   = "remote"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// DisplayLocation resolves DISPLAY_TIMEZONE, falling back to UTC.
func (c *EngineConfig) DisplayLocation() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) validate() error {
	switch c.Engine.StoreBackend {
	case StoreBackendPostgres:
	case StoreBackendRemote:
		if c.Remote.BaseURL == "" {
			return fmt.Errorf("REMOTE_BASE_URL is required when STORE_BACKEND=%s", StoreBackendRemote)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Engine.StoreBackend)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Engine: EngineConfig{
			DisplayTimeZone:      "UTC",
			GuardBookedMutations: true,
			StoreBackend:         StoreBackendPostgres,
		},
		Remote: RemoteConfig{
			Timeout: 5 * time.Second,
		},
		Redis: RedisConfig{
			DefaultsTTL: time.Minute,
		},
	}
}
