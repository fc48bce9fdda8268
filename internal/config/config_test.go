package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "America/Bogota", cfg.App.Timezone)
	assert.Equal(t, 15*time.Second, cfg.App.RequestTimeout)
	assert.Equal(t, 8*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "./uploads", cfg.Storage.BasePath)
	assert.Equal(t, "log", cfg.Notification.Channel)
	assert.Equal(t, 5*time.Second, cfg.Notification.SendTimeout)
	assert.Equal(t, 50.0, cfg.Jornada.GeofenceRadiusMeters)
	assert.Equal(t, 480, cfg.Jornada.StandardShiftMinutes)
	assert.True(t, cfg.Notification.Store)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "America/Bogota", cfg.Location().String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("FRONTEND_URL", "http://a.test, http://b.test")
	t.Setenv("NOTIFICATION_CHANNEL", "SQS")
	t.Setenv("SQS_QUEUE_URL", "http://localhost:4566/000000000000/jornada-events")
	t.Setenv("GEOFENCE_RADIUS_METERS", "75.5")
	t.Setenv("SEED_DEFAULTS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.FrontendURLs)
	assert.Equal(t, "sqs", cfg.Notification.Channel)
	assert.Equal(t, 75.5, cfg.Jornada.GeofenceRadiusMeters)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"APP_PORT":             "abc",
		"REQUEST_TIMEOUT":      "soon",
		"NOTIFICATION_STORE":   "maybe",
		"APP_TIMEZONE":         "Mars/Olympus",
		"NOTIFICATION_CHANNEL": "pigeon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			setRequired(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Database:     DatabaseConfig{Password: "secret"},
		JWT:          JWTConfig{Secret: "jwt", AccessExpiration: time.Hour},
		App:          AppConfig{Timezone: "UTC", RequestTimeout: time.Second},
		Storage:      StorageConfig{Type: "local"},
		Notification: NotificationConfig{Channel: "log"},
		Jornada:      JornadaConfig{GeofenceRadiusMeters: 50, StandardShiftMinutes: 480},
	}
	require.NoError(t, valid.Validate())

	noSecret := valid
	noSecret.JWT.Secret = ""
	assert.EqualError(t, noSecret.Validate(), "JWT_SECRET_KEY is required")

	sqsWithoutQueue := valid
	sqsWithoutQueue.Notification.Channel = "sqs"
	assert.Error(t, sqsWithoutQueue.Validate())

	seedWithoutAdmin := valid
	seedWithoutAdmin.Seed.Enabled = true
	assert.Error(t, seedWithoutAdmin.Validate())
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "jornada", Password: "pw", Name: "jornada", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://jornada:pw@db:5432/jornada?sslmode=disable", cfg.DatabaseURL())
}
