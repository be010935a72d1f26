package rolesync

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/samber/mo"
)

const (
	NoGuildMessage  = "This command can only be used in a server."
	NoMemberMessage = "Could not resolve your server membership."
)

// Invocation is the context of a toggle command. Both values are absent when
// the command is used outside of a guild.
type Invocation struct {
	GuildID mo.Option[snowflake.ID]
	Member  mo.Option[discord.Member]
}

// Acknowledger sends a text reply back to where a command was invoked.
type Acknowledger interface {
	Acknowledge(ctx context.Context, content string) error
}

// Toggle flips every allowed role that exists in the guild on the invoking
// member and acknowledges each change. It returns the number of toggled roles.
func (e *Engine) Toggle(ctx context.Context, inv Invocation, ack Acknowledger) (int, error) {
	guildID, ok := inv.GuildID.Get()
	if !ok {
		return 0, ack.Acknowledge(ctx, NoGuildMessage)
	}
	member, ok := inv.Member.Get()
	if !ok {
		return 0, ack.Acknowledge(ctx, NoMemberMessage)
	}
	roles, err := e.platform.Roles(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("fetch roles of guild %d: %w", guildID, err)
	}

	var toggled int
	for _, role := range AllowedRoles(roles, e.config.AllowedRoles) {
		var content string
		if hasRole(member, role.ID) {
			if _, err := e.revoke(ctx, guildID, member, role.ID); err != nil {
				return toggled, err
			}
			content = "you already had role " + role.Name
		} else {
			if _, err := e.grant(ctx, guildID, member, role.ID); err != nil {
				return toggled, err
			}
			content = "role " + role.Name + " added"
		}
		toggled++
		if err := ack.Acknowledge(ctx, content); err != nil {
			return toggled, err
		}
	}
	return toggled, nil
}

// MenuRoles returns the allowed roles that exist in a guild.
func (e *Engine) MenuRoles(ctx context.Context, guildID snowflake.ID) ([]discord.Role, error) {
	roles, err := e.platform.Roles(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("fetch roles of guild %d: %w", guildID, err)
	}
	return AllowedRoles(roles, e.config.AllowedRoles), nil
}
