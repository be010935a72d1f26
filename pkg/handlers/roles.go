package handlers

import (
	"context"
	"log/slog"
	"rolesync-bot/pkg/rolesync"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/lmittmann/tint"
	"github.com/samber/mo"
)

// interactionResponder is the part of *handler.CommandEvent used to answer a
// toggle.
type interactionResponder interface {
	CreateMessage(messageCreate discord.MessageCreate, opts ...rest.RequestOpt) error
	CreateFollowupMessage(messageCreate discord.MessageCreate, opts ...rest.RequestOpt) (*discord.Message, error)
}

func (h *Handler) HandleRoleToggle(event *handler.CommandEvent) error {
	var inv rolesync.Invocation
	if guildID := event.GuildID(); guildID != nil {
		inv.GuildID = mo.Some(*guildID)
	}
	if member := event.Member(); member != nil {
		inv.Member = mo.Some(member.Member)
	}
	return toggleRoles(context.Background(), h.Bot.Engine, inv, event)
}

func toggleRoles(ctx context.Context, engine *rolesync.Engine, inv rolesync.Invocation, responder interactionResponder) error {
	ack := &interactionAck{responder: responder}
	toggled, err := engine.Toggle(ctx, inv, ack)
	if err != nil && ack.sent { // answered already, the mux error hook cannot respond anymore
		slog.Error("rolesync: error while toggling roles", slog.Int("toggled", toggled), tint.Err(err))
		_, ferr := responder.CreateFollowupMessage(discord.NewMessageCreate().
			WithContent(commandErrorContent("roles", err)).
			WithEphemeral(true), rest.WithCtx(ctx))
		return ferr
	}
	if err != nil {
		return err
	}
	if toggled == 0 && !ack.sent { // discord fails the interaction if nothing is sent
		return responder.CreateMessage(discord.NewMessageCreate().
			WithContent("None of the self-assignable roles exist in this server.").
			WithEphemeral(true), rest.WithCtx(ctx))
	}
	return nil
}

// interactionAck answers the interaction with the first acknowledgment and
// sends the following ones as followup messages.
type interactionAck struct {
	responder interactionResponder
	sent      bool
}

func (a *interactionAck) Acknowledge(ctx context.Context, content string) error {
	messageCreate := discord.NewMessageCreate().WithContent(content)
	if !a.sent {
		if err := a.responder.CreateMessage(messageCreate, rest.WithCtx(ctx)); err != nil {
			return err
		}
		a.sent = true
		return nil
	}
	_, err := a.responder.CreateFollowupMessage(messageCreate, rest.WithCtx(ctx))
	return err
}
