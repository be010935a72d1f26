package rolesync

import (
	"context"
	"errors"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

var (
	ErrNoGuild  = errors.New("no guild")
	ErrNoMember = errors.New("no member")
)

// Platform is the subset of the Discord API the engine needs.
type Platform interface {
	Message(ctx context.Context, channelID snowflake.ID, messageID snowflake.ID) (*discord.Message, error)
	// ChannelGuild reports the guild owning a channel. ok is false for channels
	// outside of any guild, such as DMs.
	ChannelGuild(ctx context.Context, channelID snowflake.ID) (guildID snowflake.ID, ok bool, err error)
	Roles(ctx context.Context, guildID snowflake.ID) ([]discord.Role, error)
	Member(ctx context.Context, guildID snowflake.ID, userID snowflake.ID) (*discord.Member, error)
	AddRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error
	RemoveRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error
}

type Config struct {
	// TriggerPhrase marks a message as a role menu when its content contains it.
	TriggerPhrase string
	// AllowedRoles are the role names the toggle command may change.
	AllowedRoles []string
}

type Engine struct {
	platform Platform
	config   Config
}

func New(platform Platform, config Config) *Engine {
	return &Engine{
		platform: platform,
		config:   config,
	}
}

// Outcome describes how an event was handled.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeNoMatch
	OutcomeUnchanged
	OutcomeGranted
	OutcomeRevoked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNoMatch:
		return "no matching role"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeGranted:
		return "granted"
	case OutcomeRevoked:
		return "revoked"
	}
	return "unknown"
}
