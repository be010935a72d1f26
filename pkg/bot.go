package pkg

import (
	"rolesync-bot/pkg/config"
	"rolesync-bot/pkg/rolesync"
)

type Bot struct {
	Engine *rolesync.Engine
	Menu   config.Menu
}
