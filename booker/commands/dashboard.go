package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/game"
	"github.com/squaredcircle/booker/booker/session"
	"github.com/squaredcircle/booker/booker/utils"
)

var Dashboard = discord.SlashCommandCreate{
	Name:        "dashboard",
	Description: "📊 Your current standing at a glance",
}

func DashboardHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		state, err := b.Session.Snapshot()
		if err != nil {
			if errors.Is(err, session.ErrNoGame) {
				return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
			}
			return utils.EH.CreateErrorEmbed(e, "Failed to read game state.")
		}

		var description strings.Builder
		description.WriteString("```ansi\n")
		description.WriteString(fmt.Sprintf("\x1b[1;36mDate:\x1b[0m       %s\n", state.CurrentDate.Format("Monday, January 2, 2006")))
		description.WriteString(fmt.Sprintf("\x1b[1;36mMoney:\x1b[0m      %s\n", utils.FormatMoney(state.Money)))
		description.WriteString(fmt.Sprintf("\x1b[1;36mReputation:\x1b[0m %d\n", state.Reputation))
		if state.Mode == game.ModeWrestler && state.BeAPro != nil {
			description.WriteString(fmt.Sprintf("\x1b[1;35mRecord:\x1b[0m     %d-%d-%d\n",
				state.BeAPro.Wins, state.BeAPro.Losses, state.BeAPro.Draws))
			description.WriteString(fmt.Sprintf("\x1b[1;35mMomentum:\x1b[0m   %d\n", state.BeAPro.CurrentMomentum))
		}
		clock := "running"
		if state.Time.Paused {
			clock = "paused"
		}
		description.WriteString(fmt.Sprintf("\x1b[0;37mClock %s, %d unread emails\x1b[0m\n", clock, state.UnreadCount()))
		description.WriteString("```")

		upcoming := state.UpcomingEvents(5)
		if len(upcoming) > 0 {
			description.WriteString("\n**Upcoming**\n")
			for _, ev := range upcoming {
				marker := ""
				if ev.RequiresAttention {
					marker = " ⚠️"
				}
				description.WriteString(fmt.Sprintf("`%s` %s%s\n", ev.Date.Format("Jan 02"), ev.Title, marker))
			}
		}

		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "📊 Dashboard",
				Description: description.String(),
				Color:       utils.EmbedDefaultColor,
				Footer: &discord.EmbedFooter{
					Text: fmt.Sprintf("Requested by %s", e.User().Username),
				},
				Timestamp: &now,
			}},
		})
	}
}
