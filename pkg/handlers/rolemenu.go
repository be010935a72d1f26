package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"rolesync-bot/pkg/config"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
	"github.com/disgoorg/snowflake/v2"
	"github.com/lmittmann/tint"
)

const (
	descriptionLimit = 4096
)

type menuStatus struct {
	config.Menu
	GuildRoles []menuRole `json:"guild_roles,omitempty"`
}

type menuRole struct {
	ID   snowflake.ID `json:"id"`
	Name string       `json:"name"`
}

func (h *Handler) HandleRoleMenu(event *handler.CommandEvent) error {
	messageCreate := discord.NewMessageCreate().WithEphemeral(true)
	status := menuStatus{Menu: h.Bot.Menu}
	if guildID := event.GuildID(); guildID != nil {
		roles, err := h.Bot.Engine.MenuRoles(context.Background(), *guildID)
		if err != nil {
			slog.Error("rolesync: error while fetching menu roles", slog.Any("guild.id", *guildID), tint.Err(err))
			return event.CreateMessage(messageCreate.WithContent("There was an error while fetching the roles of this server."))
		}
		for _, role := range roles {
			status.GuildRoles = append(status.GuildRoles, menuRole{ID: role.ID, Name: role.Name})
		}
	}
	content, err := renderMenuStatus(status)
	if err != nil {
		return err
	}
	if len(content) > descriptionLimit {
		return event.CreateMessage(messageCreate.WithContentf("Role menu setup is longer than **%d** chars (**%d**).", descriptionLimit, len(content)))
	}
	embedBuilder := discord.NewEmbedBuilder()
	embedBuilder.SetColor(0x5865F2)
	embedBuilder.SetTitle("Role menu")
	embedBuilder.SetDescription(content)
	return event.CreateMessage(messageCreate.WithEmbeds(embedBuilder.Build()))
}

func renderMenuStatus(status menuStatus) (string, error) {
	b, err := json.Marshal(status)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return "", err
	}
	return "```json\n" + out.String() + "\n```", nil
}
