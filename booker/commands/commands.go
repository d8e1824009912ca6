package commands

import (
	"github.com/disgoorg/disgo/discord"
)

var Commands = []discord.ApplicationCommandCreate{
	NewGame,
	Dashboard,
	Advance,
	Pause,
	Inbox,
	Match,
	Roster,
	Search,
	Train,
	Release,
	Book,
	Saves,
}
