package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("ROLESYNC_BOT_TOKEN", "token")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "token", cfg.Token)
	assert.Equal(t, "DEV", cfg.Environment)
	assert.False(t, cfg.Production())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "votre rôle", cfg.Menu.TriggerPhrase)
	assert.Equal(t, []string{"baaaaaaaa", "boooo"}, cfg.Menu.AllowedRoles)

	roleSync := cfg.Menu.RoleSync()
	assert.Equal(t, cfg.Menu.TriggerPhrase, roleSync.TriggerPhrase)
	assert.Equal(t, cfg.Menu.AllowedRoles, roleSync.AllowedRoles)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("ROLESYNC_BOT_TOKEN", "token")
	t.Setenv("ROLESYNC_ENVIRONMENT", "PROD")
	t.Setenv("ROLESYNC_LOG_LEVEL", "DEBUG")
	t.Setenv("ROLESYNC_TRIGGER_PHRASE", "pick a role")
	t.Setenv("ROLESYNC_ALLOWED_ROLES", "red, blue,,green ")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "pick a role", cfg.Menu.TriggerPhrase)
	assert.Equal(t, []string{"red", "blue", "green"}, cfg.Menu.AllowedRoles)
}

func TestParse_Invalid(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("ROLESYNC_BOT_TOKEN", "")
		_, err := Parse()
		assert.Error(t, err)
	})

	t.Run("blank trigger phrase", func(t *testing.T) {
		t.Setenv("ROLESYNC_BOT_TOKEN", "token")
		t.Setenv("ROLESYNC_TRIGGER_PHRASE", "  ")
		_, err := Parse()
		assert.Error(t, err)
	})
}
