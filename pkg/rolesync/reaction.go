package rolesync

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"
)

// HandleReaction grants or revokes the role named after a custom emoji reacted
// on a role menu message. Reactions on other messages, unicode emoji and emoji
// without a matching role are ignored without error.
func (e *Engine) HandleReaction(ctx context.Context, event Event) (Outcome, error) {
	switch ev := event.(type) {
	case ReactionAdded:
		return e.reactionAdded(ctx, ev)
	case ReactionRemoved:
		return e.reactionRemoved(ctx, ev)
	default:
		return OutcomeIgnored, nil
	}
}

func (e *Engine) reactionAdded(ctx context.Context, ev ReactionAdded) (Outcome, error) {
	token, ok, err := e.menuToken(ctx, ev.ChannelID, ev.MessageID, ev.Emoji)
	if err != nil || !ok {
		return OutcomeIgnored, err
	}
	guildID, ok, err := e.platform.ChannelGuild(ctx, ev.ChannelID)
	if err != nil {
		return OutcomeIgnored, fmt.Errorf("fetch channel %d: %w", ev.ChannelID, err)
	}
	if !ok {
		return OutcomeIgnored, ErrNoGuild
	}
	roles, err := e.platform.Roles(ctx, guildID)
	if err != nil {
		return OutcomeIgnored, fmt.Errorf("fetch roles of guild %d: %w", guildID, err)
	}
	role, ok := ResolveRole(roles, token)
	if !ok {
		return OutcomeNoMatch, nil
	}
	member, ok := ev.Member.Get()
	if !ok {
		return OutcomeIgnored, ErrNoMember
	}
	return e.grant(ctx, guildID, member, role.ID)
}

func (e *Engine) reactionRemoved(ctx context.Context, ev ReactionRemoved) (Outcome, error) {
	token, ok, err := e.menuToken(ctx, ev.ChannelID, ev.MessageID, ev.Emoji)
	if err != nil || !ok {
		return OutcomeIgnored, err
	}
	if ev.GuildID == 0 {
		return OutcomeIgnored, ErrNoGuild
	}

	var (
		roles     []discord.Role
		member    *discord.Member
		memberErr error
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		if roles, err = e.platform.Roles(ctx, ev.GuildID); err != nil {
			return fmt.Errorf("fetch roles of guild %d: %w", ev.GuildID, err)
		}
		return nil
	})
	eg.Go(func() error {
		// only relevant once a role matched, checked below
		member, memberErr = e.platform.Member(ctx, ev.GuildID, ev.UserID)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return OutcomeIgnored, err
	}

	role, ok := ResolveRole(roles, token)
	if !ok {
		return OutcomeNoMatch, nil
	}
	if memberErr != nil {
		return OutcomeIgnored, fmt.Errorf("fetch member %d of guild %d: %w", ev.UserID, ev.GuildID, memberErr)
	}
	if member == nil {
		return OutcomeIgnored, ErrNoMember
	}
	return e.revoke(ctx, ev.GuildID, *member, role.ID)
}

// menuToken fetches the reacted message and returns the role token when the
// message is a role menu and the emoji is a named custom emoji.
func (e *Engine) menuToken(ctx context.Context, channelID snowflake.ID, messageID snowflake.ID, emoji discord.PartialEmoji) (string, bool, error) {
	message, err := e.platform.Message(ctx, channelID, messageID)
	if err != nil {
		return "", false, fmt.Errorf("fetch message %d in channel %d: %w", messageID, channelID, err)
	}
	if !strings.Contains(message.Content, e.config.TriggerPhrase) {
		return "", false, nil
	}
	token, ok := RoleToken(emoji)
	return token, ok, nil
}
