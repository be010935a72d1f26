package rolesync

import (
	"context"
	"fmt"
	"slices"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

func hasRole(member discord.Member, roleID snowflake.ID) bool {
	return slices.Contains(member.RoleIDs, roleID)
}

// grant adds roleID to member. A role the member already holds is left alone
// and reported as OutcomeUnchanged.
func (e *Engine) grant(ctx context.Context, guildID snowflake.ID, member discord.Member, roleID snowflake.ID) (Outcome, error) {
	if hasRole(member, roleID) {
		return OutcomeUnchanged, nil
	}
	if err := e.platform.AddRole(ctx, guildID, member.User.ID, roleID); err != nil {
		return OutcomeIgnored, fmt.Errorf("add role %d to member %d: %w", roleID, member.User.ID, err)
	}
	return OutcomeGranted, nil
}

func (e *Engine) revoke(ctx context.Context, guildID snowflake.ID, member discord.Member, roleID snowflake.ID) (Outcome, error) {
	if !hasRole(member, roleID) {
		return OutcomeUnchanged, nil
	}
	if err := e.platform.RemoveRole(ctx, guildID, member.User.ID, roleID); err != nil {
		return OutcomeIgnored, fmt.Errorf("remove role %d from member %d: %w", roleID, member.User.ID, err)
	}
	return OutcomeRevoked, nil
}
