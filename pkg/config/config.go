package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	HTTP         HTTPConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
	Metrics      MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs error
	if !isKnownDriver(c.DB.Driver) {
		errs = multierr.Append(errs, fmt.Errorf("%s must be one of %s", EnvDBDriver, strings.Join(supportedDrivers, ", ")))
	}
	if c.DB.DSN == "" {
		errs = multierr.Append(errs, fmt.Errorf("%s is required", EnvDBDSN))
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = multierr.Append(errs, errors.New("http shutdown timeout must be positive"))
	}
	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Namespace) == "" {
		errs = multierr.Append(errs, fmt.Errorf("%s is required when metrics are enabled", EnvMetricsNamespace))
	}
	return errs
}

type AppConfig struct {
	Env          string `envconfig:"SHOPINSIGHTS_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPINSIGHTS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPINSIGHTS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPINSIGHTS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

type DBConfig struct {
	DSN    string `envconfig:"SHOPINSIGHTS_DB_DSN"`
	Driver string `envconfig:"SHOPINSIGHTS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SHOPINSIGHTS_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPINSIGHTS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPINSIGHTS_DB_USER"`
	LegacyPassword string `envconfig:"SHOPINSIGHTS_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPINSIGHTS_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPINSIGHTS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHOPINSIGHTS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPINSIGHTS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPINSIGHTS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPINSIGHTS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// NormalizedDriver lowercases the driver name and folds the sqlite3 alias.
func (db DBConfig) NormalizedDriver() string {
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	if driver == "sqlite3" {
		return DriverSQLite
	}
	return driver
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"SHOPINSIGHTS_HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SHOPINSIGHTS_HTTP_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"SHOPINSIGHTS_HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHOPINSIGHTS_HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPINSIGHTS_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHOPINSIGHTS_AUTO_MIGRATE" default:"false"`
}

type MetricsConfig struct {
	Enabled   bool   `envconfig:"SHOPINSIGHTS_METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"SHOPINSIGHTS_METRICS_NAMESPACE" default:"shopinsights"`
}

func isKnownDriver(driver string) bool {
	normalized := DBConfig{Driver: driver}.NormalizedDriver()
	for _, candidate := range supportedDrivers {
		if candidate == normalized {
			return true
		}
	}
	return false
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	switch db.NormalizedDriver() {
	case DriverSQLite:
		db.DSN = DefaultSQLiteDSN
		return nil
	case DriverPostgres:
	default:
		return fmt.Errorf("%s is required for driver %q", EnvDBDSN, db.Driver)
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
