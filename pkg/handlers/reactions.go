package handlers

import (
	"context"
	"errors"
	"log/slog"
	"rolesync-bot/pkg"
	"rolesync-bot/pkg/rolesync"
	"runtime/debug"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/lmittmann/tint"
	"github.com/samber/mo"
)

var _ bot.EventListener = (*ReactionListener)(nil)

// ReactionListener feeds guild reaction events to the engine. Every other
// gateway event is ignored.
type ReactionListener struct {
	Bot *pkg.Bot
}

func NewReactionListener(b *pkg.Bot) *ReactionListener {
	return &ReactionListener{Bot: b}
}

func (l *ReactionListener) OnEvent(event bot.Event) {
	switch ev := event.(type) {
	case *events.GuildMessageReactionAdd:
		l.handle(reactionAdded(ev),
			slog.Any("guild.id", ev.GuildID),
			slog.Any("message.id", ev.MessageID),
			slog.Any("user.id", ev.UserID))
	case *events.GuildMessageReactionRemove:
		l.handle(reactionRemoved(ev),
			slog.Any("guild.id", ev.GuildID),
			slog.Any("message.id", ev.MessageID),
			slog.Any("user.id", ev.UserID))
	default:
	}
}

func (l *ReactionListener) handle(ev rolesync.Event, attrs ...any) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("rolesync: panic while handling a reaction", append(attrs, slog.Any("panic", r), slog.String("stack", string(debug.Stack())))...)
		}
	}()
	outcome, err := l.Bot.Engine.HandleReaction(context.Background(), ev)
	switch {
	case errors.Is(err, rolesync.ErrNoGuild), errors.Is(err, rolesync.ErrNoMember):
		slog.Debug("rolesync: dropping an unresolvable reaction", append(attrs, tint.Err(err))...)
	case err != nil:
		slog.Error("rolesync: error while handling a reaction", append(attrs, tint.Err(err))...)
	case outcome != rolesync.OutcomeIgnored:
		slog.Debug("rolesync: handled a reaction", append(attrs, slog.String("outcome", outcome.String()))...)
	}
}

func reactionAdded(ev *events.GuildMessageReactionAdd) rolesync.ReactionAdded {
	added := rolesync.ReactionAdded{
		ChannelID: ev.ChannelID,
		MessageID: ev.MessageID,
		UserID:    ev.UserID,
		Emoji:     ev.Emoji,
		Member:    mo.None[discord.Member](),
	}
	if ev.Member.User.ID != 0 {
		added.Member = mo.Some(ev.Member)
	}
	return added
}

func reactionRemoved(ev *events.GuildMessageReactionRemove) rolesync.ReactionRemoved {
	return rolesync.ReactionRemoved{
		ChannelID: ev.ChannelID,
		MessageID: ev.MessageID,
		GuildID:   ev.GuildID,
		UserID:    ev.UserID,
		Emoji:     ev.Emoji,
	}
}
