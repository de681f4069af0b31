package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	FeatureFlags FeatureFlagsConfig
	Platform     PlatformConfig
	Calendar     CalendarConfig
	PubSub       PubSubConfig
	CORS         CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	if _, err := cfg.Calendar.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALONADMIN_APP_ENV" required:"true"`
	Port         string `envconfig:"SALONADMIN_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SALONADMIN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALONADMIN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"SALONADMIN_DB_DSN"`

	LegacyHost     string `envconfig:"SALONADMIN_DB_HOST"`
	LegacyPort     int    `envconfig:"SALONADMIN_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SALONADMIN_DB_USER"`
	LegacyPassword string `envconfig:"SALONADMIN_DB_PASSWORD"`
	LegacyName     string `envconfig:"SALONADMIN_DB_NAME"`
	LegacySSLMode  string `envconfig:"SALONADMIN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SALONADMIN_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"SALONADMIN_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"SALONADMIN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SALONADMIN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SALONADMIN_REDIS_URL"`
	Address      string        `envconfig:"SALONADMIN_REDIS_ADDR"`
	Password     string        `envconfig:"SALONADMIN_REDIS_PASSWORD"`
	DB           int           `envconfig:"SALONADMIN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SALONADMIN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SALONADMIN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SALONADMIN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SALONADMIN_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"SALONADMIN_REDIS_WRITE_TIMEOUT" default:"3s"`
}

// Enabled reports whether any redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

// JWTConfig holds the secret shared with the platform's auth service.
type JWTConfig struct {
	Secret            string `envconfig:"SALONADMIN_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SALONADMIN_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SALONADMIN_JWT_EXPIRATION_MINUTES" default:"60"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SALONADMIN_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SALONADMIN_AUTO_MIGRATE" default:"false"`
}

// PlatformConfig points at the salon platform REST API the admin screens are built on.
type PlatformConfig struct {
	BaseURL string        `envconfig:"SALONADMIN_PLATFORM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SALONADMIN_PLATFORM_TIMEOUT" default:"10s"`
}

type CalendarConfig struct {
	Timezone string `envconfig:"SALONADMIN_CALENDAR_TIMEZONE" default:"UTC"`
}

// Location resolves the venue wall-clock zone bookings are expressed in.
func (c CalendarConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading calendar timezone %q: %w", name, err)
	}
	return loc, nil
}

type PubSubConfig struct {
	ProjectID          string `envconfig:"SALONADMIN_GCP_PROJECT_ID"`
	BookingEventsTopic string `envconfig:"SALONADMIN_PUBSUB_BOOKING_EVENTS_TOPIC"`
}

// Enabled reports whether booking change events should be published.
func (p PubSubConfig) Enabled() bool {
	return strings.TrimSpace(p.ProjectID) != "" && strings.TrimSpace(p.BookingEventsTopic) != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SALONADMIN_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if db.DSN != "" {
		return nil
	}
	if useSQLite {
		db.DSN = DefaultSQLiteDSN
		return nil
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
