package bootstrap

import (
	"context"
	"io"
	"testing"

	"clinic-records-api/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverMemory}}

	store, err := openStore(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close(context.Background()))
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: "sqlite"}}

	_, err := openStore(context.Background(), cfg, quietLogger())
	assert.ErrorContains(t, err, "sqlite")
}

func TestSetupLogger_FallsBackToInfo(t *testing.T) {
	log := setupLogger(config.LogConfig{Level: "chatty"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log = setupLogger(config.LogConfig{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.SetLevel(logrus.InfoLevel)
}
