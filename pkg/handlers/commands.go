package handlers

import (
	"fmt"
	"log/slog"
	"rolesync-bot/pkg"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

var Commands = []discord.ApplicationCommandCreate{
	discord.SlashCommandCreate{
		Name:        "roles",
		Description: "Toggle the self-assignable roles of this server",
	},
	discord.SlashCommandCreate{
		Name:        "rolemenu",
		Description: "Show how the role menu is set up",
	},
}

func NewHandler(b *pkg.Bot) *Handler {
	mux := handler.New()
	mux.Error(func(e *handler.InteractionEvent, err error) {
		i := e.Interaction.(discord.ApplicationCommandInteraction)
		name := i.Data.CommandName()
		slog.Error("rolesync: error while handling a command", slog.String("command.name", name), tint.Err(err))
		_ = e.Respond(discord.InteractionResponseTypeCreateMessage, discord.NewMessageCreate().
			WithContent(commandErrorContent(name, err)).
			WithEphemeral(true))
	})
	handlers := &Handler{
		Bot:    b,
		Router: mux,
	}
	handlers.Command("/roles", handlers.HandleRoleToggle)
	handlers.Command("/rolemenu", handlers.HandleRoleMenu)
	return handlers
}

type Handler struct {
	Bot *pkg.Bot
	handler.Router
}

func commandErrorContent(name string, err error) string {
	return fmt.Sprintf("Could not finish `/%s`, your roles may be partly updated: %v", name, err)
}
