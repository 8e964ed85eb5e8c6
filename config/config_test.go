package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.App.EmptyListAsError)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, DriverMongo, cfg.DB.Driver)
	assert.Equal(t, "es", cfg.Messages.Locale)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DB_DRIVER", "Postgres")
	v.Set("APP_EMPTY_LIST_AS_ERROR", false)
	v.Set("SHUTDOWN_TIMEOUT", "not-a-duration")
	v.Set("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	v.Set("APP_LOCALE", "EN")

	cfg := fromViper(v)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.False(t, cfg.App.EmptyListAsError)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, "en", cfg.Messages.Locale)
}
