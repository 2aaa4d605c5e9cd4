package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, 24*60, cfg.JWT.Expiration, "el token dura un día por defecto")
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.Migrate)
}

func TestFromViper_EnvStringsAreParsed(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("APP_ENV", "production")
	v.Set("DB_PORT", "6543")
	v.Set("DB_MIGRATE", "true")
	v.Set("RATE_LIMIT_MAX", "not-a-number")
	v.Set("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, 100, cfg.RateLimit.Max, "valor inválido cae al default")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestFromViper_SinSecret(t *testing.T) {
	_, err := fromViper(viper.New())
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "estoque", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/estoque?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
