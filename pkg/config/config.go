package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Supported resolver providers.
const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string
	Timezone  string

	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	JWT      JWTConfig
	Admin    AdminConfig
	CORS     CORSConfig
	Log      LogConfig
	Query    QueryConfig
	Resolver ResolverConfig
	Metrics  MetricsConfig
}

type DatabaseConfig struct {
	Driver       string
	Path         string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig toggles caching of query results in Redis.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// AdminConfig holds the single administrator credential.
type AdminConfig struct {
	Email        string
	Password     string
	PasswordHash string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// QueryConfig sets the default look-ahead windows of the query layer.
type QueryConfig struct {
	EventsDaysAhead     int
	ExamsDaysAhead      int
	PlacementsDaysAhead int
	MaxDaysAhead        int
}

// ResolverConfig configures the natural-language resolver backend.
type ResolverConfig struct {
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string
	Timeout       time.Duration
	MaxToolRounds int
	EagerInit     bool
}

type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.Timezone = v.GetString("APP_TIMEZONE")

	cfg.Database = DatabaseConfig{
		Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
		Path:         v.GetString("DB_PATH"),
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 2*time.Minute),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 12*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.Admin = AdminConfig{
		Email:        v.GetString("ADMIN_EMAIL"),
		Password:     v.GetString("ADMIN_PASSWORD"),
		PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Query = QueryConfig{
		EventsDaysAhead:     v.GetInt("QUERY_EVENTS_DAYS_AHEAD"),
		ExamsDaysAhead:      v.GetInt("QUERY_EXAMS_DAYS_AHEAD"),
		PlacementsDaysAhead: v.GetInt("QUERY_PLACEMENTS_DAYS_AHEAD"),
		MaxDaysAhead:        v.GetInt("QUERY_MAX_DAYS_AHEAD"),
	}

	provider := strings.ToLower(strings.TrimSpace(v.GetString("RESOLVER_PROVIDER")))
	cfg.Resolver = ResolverConfig{
		Provider:      provider,
		APIKey:        resolverAPIKey(v, provider),
		Model:         v.GetString("RESOLVER_MODEL"),
		BaseURL:       v.GetString("RESOLVER_BASE_URL"),
		Timeout:       parseDuration(v.GetString("RESOLVER_TIMEOUT"), 30*time.Second),
		MaxToolRounds: v.GetInt("RESOLVER_MAX_TOOL_ROUNDS"),
		EagerInit:     v.GetBool("RESOLVER_EAGER_INIT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8000)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("APP_TIMEZONE", "Local")

	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "campus.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "campus_concierge")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "2m")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "12h")
	v.SetDefault("JWT_ISSUER", "campus-concierge")
	v.SetDefault("ADMIN_EMAIL", "admin@campus.local")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")

	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("QUERY_EVENTS_DAYS_AHEAD", 7)
	v.SetDefault("QUERY_EXAMS_DAYS_AHEAD", 30)
	v.SetDefault("QUERY_PLACEMENTS_DAYS_AHEAD", 30)
	v.SetDefault("QUERY_MAX_DAYS_AHEAD", 365)

	v.SetDefault("RESOLVER_PROVIDER", ProviderGemini)
	v.SetDefault("RESOLVER_API_KEY", "")
	v.SetDefault("RESOLVER_MODEL", "")
	v.SetDefault("RESOLVER_BASE_URL", "")
	v.SetDefault("RESOLVER_TIMEOUT", "30s")
	v.SetDefault("RESOLVER_MAX_TOOL_ROUNDS", 4)
	v.SetDefault("RESOLVER_EAGER_INIT", false)

	v.SetDefault("ENABLE_METRICS", true)
}

// resolverAPIKey falls back to the provider specific variable when the generic key is unset.
func resolverAPIKey(v *viper.Viper, provider string) string {
	if key := strings.TrimSpace(v.GetString("RESOLVER_API_KEY")); key != "" {
		return key
	}
	switch provider {
	case ProviderGemini:
		return strings.TrimSpace(v.GetString("GEMINI_API_KEY"))
	case ProviderGroq:
		return strings.TrimSpace(v.GetString("GROQ_API_KEY"))
	case ProviderOpenAI:
		return strings.TrimSpace(v.GetString("OPENAI_API_KEY"))
	}
	return ""
}

func isMissingFile(err error) bool {
	return strings.Contains(err.Error(), "no such file or directory") || strings.Contains(err.Error(), "cannot find the file")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
