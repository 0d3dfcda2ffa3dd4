package config

// EnvPrefix is handed to envconfig; every field carries its full variable name.
const EnvPrefix = "SHOPINSIGHTS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	DefaultSQLiteDSN = "file:shopinsights.db?_foreign_keys=on"
)

var supportedDrivers = []string{DriverPostgres, DriverMySQL, DriverSQLite}

const (
	EnvAppEnv           = "SHOPINSIGHTS_APP_ENV"
	EnvPort             = "SHOPINSIGHTS_APP_PORT"
	EnvLogLevel         = "SHOPINSIGHTS_LOG_LEVEL"
	EnvDBDSN            = "SHOPINSIGHTS_DB_DSN"
	EnvDBDriver         = "SHOPINSIGHTS_DB_DRIVER"
	EnvDBHost           = "SHOPINSIGHTS_DB_HOST"
	EnvDBPort           = "SHOPINSIGHTS_DB_PORT"
	EnvDBUser           = "SHOPINSIGHTS_DB_USER"
	EnvDBPassword       = "SHOPINSIGHTS_DB_PASSWORD"
	EnvDBName           = "SHOPINSIGHTS_DB_NAME"
	EnvCORSOrigins      = "SHOPINSIGHTS_CORS_ALLOWED_ORIGINS"
	EnvAutoMigrate      = "SHOPINSIGHTS_AUTO_MIGRATE"
	EnvShutdownTimeout  = "SHOPINSIGHTS_HTTP_SHUTDOWN_TIMEOUT"
	EnvMetricsEnabled   = "SHOPINSIGHTS_METRICS_ENABLED"
	EnvMetricsNamespace = "SHOPINSIGHTS_METRICS_NAMESPACE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
