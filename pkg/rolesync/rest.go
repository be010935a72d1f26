package rolesync

import (
	"context"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

var _ Platform = (*RestPlatform)(nil)

// RestPlatform implements Platform with plain REST calls. Nothing is read from
// the gateway cache so every event sees the current roles and members.
type RestPlatform struct {
	rest rest.Rest
}

func NewRestPlatform(client rest.Rest) *RestPlatform {
	return &RestPlatform{rest: client}
}

func (p *RestPlatform) Message(ctx context.Context, channelID snowflake.ID, messageID snowflake.ID) (*discord.Message, error) {
	return p.rest.GetMessage(channelID, messageID, rest.WithCtx(ctx))
}

func (p *RestPlatform) ChannelGuild(ctx context.Context, channelID snowflake.ID) (snowflake.ID, bool, error) {
	channel, err := p.rest.GetChannel(channelID, rest.WithCtx(ctx))
	if err != nil {
		return 0, false, err
	}
	guildChannel, ok := channel.(discord.GuildChannel)
	if !ok {
		return 0, false, nil
	}
	return guildChannel.GuildID(), true, nil
}

func (p *RestPlatform) Roles(ctx context.Context, guildID snowflake.ID) ([]discord.Role, error) {
	return p.rest.GetRoles(guildID, rest.WithCtx(ctx))
}

func (p *RestPlatform) Member(ctx context.Context, guildID snowflake.ID, userID snowflake.ID) (*discord.Member, error) {
	return p.rest.GetMember(guildID, userID, rest.WithCtx(ctx))
}

func (p *RestPlatform) AddRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	return p.rest.AddMemberRole(guildID, userID, roleID, rest.WithCtx(ctx))
}

func (p *RestPlatform) RemoveRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	return p.rest.RemoveMemberRole(guildID, userID, roleID, rest.WithCtx(ctx))
}
