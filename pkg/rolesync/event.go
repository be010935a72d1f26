package rolesync

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/samber/mo"
)

// Event is a reaction event the engine knows how to handle. The set of
// implementations is closed: ReactionAdded and ReactionRemoved.
type Event interface {
	reactionEvent()
}

// ReactionAdded is delivered when a user adds a reaction. The gateway embeds a
// member snapshot for guild reactions, but it is not guaranteed to be present.
type ReactionAdded struct {
	ChannelID snowflake.ID
	MessageID snowflake.ID
	UserID    snowflake.ID
	Emoji     discord.PartialEmoji
	Member    mo.Option[discord.Member]
}

// ReactionRemoved is delivered when a user removes a reaction. Discord sends no
// member snapshot on removal, only the guild ID.
type ReactionRemoved struct {
	ChannelID snowflake.ID
	MessageID snowflake.ID
	GuildID   snowflake.ID
	UserID    snowflake.ID
	Emoji     discord.PartialEmoji
}

func (ReactionAdded) reactionEvent()   {}
func (ReactionRemoved) reactionEvent() {}

// RoleToken returns the name of a custom emoji. Unicode emoji have no ID and
// never produce a token.
func RoleToken(emoji discord.PartialEmoji) (string, bool) {
	if emoji.ID == nil || emoji.Name == nil || *emoji.Name == "" {
		return "", false
	}
	return *emoji.Name, true
}
