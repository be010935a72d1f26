package rolesync

import (
	"slices"

	"github.com/disgoorg/disgo/discord"
)

// ResolveRole returns the first role whose name equals token. Discord does not
// enforce unique role names, so the platform order decides between duplicates.
func ResolveRole(roles []discord.Role, token string) (discord.Role, bool) {
	i := slices.IndexFunc(roles, func(role discord.Role) bool {
		return role.Name == token
	})
	if i == -1 {
		return discord.Role{}, false
	}
	return roles[i], true
}

// AllowedRoles returns the roles whose names are in allowed, in platform order.
func AllowedRoles(roles []discord.Role, allowed []string) []discord.Role {
	var matched []discord.Role
	for _, role := range roles {
		if slices.Contains(allowed, role.Name) {
			matched = append(matched, role)
		}
	}
	return matched
}
