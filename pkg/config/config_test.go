package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 7, cfg.Query.EventsDaysAhead)
	assert.Equal(t, 30, cfg.Query.ExamsDaysAhead)
	assert.Equal(t, 30, cfg.Query.PlacementsDaysAhead)
	assert.Equal(t, ProviderGemini, cfg.Resolver.Provider)
	assert.Equal(t, 30*time.Second, cfg.Resolver.Timeout)
	assert.Equal(t, 4, cfg.Resolver.MaxToolRounds)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestResolverKeyFallsBackToProviderVariable(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("RESOLVER_PROVIDER", "GROQ")
	v.Set("GROQ_API_KEY", " gsk-test ")

	cfg := fromViper(v)
	assert.Equal(t, ProviderGroq, cfg.Resolver.Provider)
	assert.Equal(t, "gsk-test", cfg.Resolver.APIKey)

	v.Set("RESOLVER_API_KEY", "explicit")
	assert.Equal(t, "explicit", fromViper(v).Resolver.APIKey)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, 90*time.Second, parseDuration("90s", time.Minute))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a, ,b "))
}
