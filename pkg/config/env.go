package config

const (
	EnvPrefix = "SALONADMIN"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	DefaultSQLiteDSN = "file:salonadmin.db?cache=shared&_fk=1"
)

const (
	EnvAppEnv          = "SALONADMIN_APP_ENV"
	EnvPort            = "SALONADMIN_APP_PORT"
	EnvLogLevel        = "SALONADMIN_LOG_LEVEL"
	EnvDBDSN           = "SALONADMIN_DB_DSN"
	EnvDBHost          = "SALONADMIN_DB_HOST"
	EnvDBUser          = "SALONADMIN_DB_USER"
	EnvDBPassword      = "SALONADMIN_DB_PASSWORD"
	EnvDBName          = "SALONADMIN_DB_NAME"
	EnvRedisURL        = "SALONADMIN_REDIS_URL"
	EnvJWTSecret       = "SALONADMIN_JWT_SECRET"
	EnvJWTIssuer       = "SALONADMIN_JWT_ISSUER"
	EnvUseSQLite       = "SALONADMIN_USE_SQLITE"
	EnvPlatformBaseURL = "SALONADMIN_PLATFORM_BASE_URL"
	EnvPlatformTimeout = "SALONADMIN_PLATFORM_TIMEOUT"
	EnvCalendarTZ      = "SALONADMIN_CALENDAR_TIMEZONE"
	EnvGCPProjectID    = "SALONADMIN_GCP_PROJECT_ID"
	EnvBookingTopic    = "SALONADMIN_PUBSUB_BOOKING_EVENTS_TOPIC"
	EnvCORSOrigins     = "SALONADMIN_CORS_ALLOWED_ORIGINS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
