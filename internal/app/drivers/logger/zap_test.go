package logger

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	t.Run("Level From Config", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
		internalConfig := &config.InternalConfig{App: config.App{Env: constvars.AppEnvDevelopment}}

		logger := NewZapLogger(driverConfig, internalConfig)
		require.NotNil(t, logger)

		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
		assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "verbose"}}
		internalConfig := &config.InternalConfig{App: config.App{
			Env:      constvars.AppEnvDevelopment,
			Services: []string{constvars.ServiceAppointments},
		}}

		logger := NewZapLogger(driverConfig, internalConfig)

		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	})
}
