package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"rolesync-bot/pkg/rolesync"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Token       string     `env:"ROLESYNC_BOT_TOKEN,required,notEmpty"`
	SentryDSN   string     `env:"SENTRY_DSN"`
	Environment string     `env:"ROLESYNC_ENVIRONMENT" envDefault:"DEV"`
	LogLevel    slog.Level `env:"ROLESYNC_LOG_LEVEL" envDefault:"INFO"`
	Menu        Menu
}

// Menu is the role menu setup shared by every guild the bot is in.
type Menu struct {
	TriggerPhrase string   `env:"ROLESYNC_TRIGGER_PHRASE" envDefault:"votre rôle" json:"trigger_phrase"`
	AllowedRoles  []string `env:"ROLESYNC_ALLOWED_ROLES" envSeparator:"," envDefault:"baaaaaaaa,boooo" json:"allowed_roles"`
}

func (m Menu) RoleSync() rolesync.Config {
	return rolesync.Config{
		TriggerPhrase: m.TriggerPhrase,
		AllowedRoles:  m.AllowedRoles,
	}
}

func (c *Config) Production() bool {
	return c.Environment == "PROD"
}

// Load reads a .env file from the working directory when there is one and then
// parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Menu.AllowedRoles = cleanRoleNames(cfg.Menu.AllowedRoles)
	if strings.TrimSpace(cfg.Menu.TriggerPhrase) == "" {
		return nil, errors.New("trigger phrase must not be empty")
	}
	return &cfg, nil
}

func cleanRoleNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return cleaned
}
