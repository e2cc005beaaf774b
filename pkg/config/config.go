package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Diamante     DiamanteConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AURUM_APP_ENV" required:"true"`
	Port         string `envconfig:"AURUM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AURUM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AURUM_LOG_WARN_STACK" default:"false"`
	CORSOrigins  string `envconfig:"AURUM_CORS_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AURUM_DB_DSN"`
	Driver string `envconfig:"AURUM_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AURUM_DB_HOST"`
	LegacyPort     int    `envconfig:"AURUM_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AURUM_DB_USER"`
	LegacyPassword string `envconfig:"AURUM_DB_PASSWORD"`
	LegacyName     string `envconfig:"AURUM_DB_NAME"`
	LegacySSLMode  string `envconfig:"AURUM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AURUM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AURUM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AURUM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AURUM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"AURUM_REDIS_URL" required:"true"`
	Password     string        `envconfig:"AURUM_REDIS_PASSWORD"`
	DB           int           `envconfig:"AURUM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AURUM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AURUM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AURUM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AURUM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AURUM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"AURUM_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"AURUM_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"AURUM_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"AURUM_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"AURUM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"AURUM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"AURUM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"AURUM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"AURUM_ARGON_KEY_LEN" default:"32"`
}

// DiamanteConfig carries the credentials for the external invoicing API.
// Both URL and key must be present for the integration to be considered
// configured; the adapter degrades to no-ops otherwise.
type DiamanteConfig struct {
	APIURL  string        `envconfig:"AURUM_DIAMANTE_API_URL"`
	APIKey  string        `envconfig:"AURUM_DIAMANTE_API_KEY"`
	Timeout time.Duration `envconfig:"AURUM_DIAMANTE_TIMEOUT" default:"10s"`
}

// IsConfigured reports whether both credentials are set.
func (d DiamanteConfig) IsConfigured() bool {
	return strings.TrimSpace(d.APIURL) != "" && strings.TrimSpace(d.APIKey) != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"AURUM_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
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
