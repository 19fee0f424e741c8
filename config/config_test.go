package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/kpi.db", cfg.Database.Path)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Analytics.CacheTTL)
	assert.Equal(t, "0 8 * * *", cfg.Alert.Cron)
	assert.Equal(t, 30, cfg.Alert.WindowDays)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("CHAT_RATE_WINDOW", "30s")
	t.Setenv("ALERT_RECIPIENTS", " ceo@example.com, ,ops@example.com ")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Chat.RateWindow)
	assert.Equal(t, []string{"ceo@example.com", "ops@example.com"}, cfg.Alert.Recipients)
	assert.Equal(t, 8080, cfg.Server.Port)
}
