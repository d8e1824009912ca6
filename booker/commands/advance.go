package commands

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/session"
	"github.com/squaredcircle/booker/booker/utils"
)

var Advance = discord.SlashCommandCreate{
	Name:        "advance",
	Description: "⏩ Advance the calendar",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "days",
			Description: "How many days to skip (stops early before critical events)",
			Required:    true,
			MinValue:    intPtr(1),
			MaxValue:    intPtr(30),
		},
	},
}

var Pause = discord.SlashCommandCreate{
	Name:        "pause",
	Description: "⏸️ Pause or resume the game clock",
}

func AdvanceHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		days := e.SlashCommandInteractionData().Int("days")

		before, err := b.Session.Snapshot()
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
		}

		state, err := b.Session.Advance(days)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrPaused):
				return utils.EH.CreateErrorEmbed(e, "The clock is paused. Resume it with /pause first.")
			case errors.Is(err, session.ErrNoGame):
				return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
			default:
				return utils.EH.CreateErrorEmbed(e, "Failed to advance time.")
			}
		}

		elapsed := int(state.CurrentDate.Sub(before.CurrentDate).Hours() / 24)
		description := fmt.Sprintf("Advanced **%d day(s)** to %s.",
			elapsed, state.CurrentDate.Format("Monday, January 2, 2006"))
		if elapsed < days {
			description += "\n⚠️ Stopped early: an event needs your attention."
		}

		newEvents := len(state.Calendar) - len(before.Calendar)
		if newEvents > 0 {
			description += fmt.Sprintf("\n📅 %d new event(s) on the calendar.", newEvents)
		}

		return utils.EH.CreateSuccessEmbed(e, "⏩ Time Advanced", description)
	}
}

func PauseHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		state, err := b.Session.TogglePause()
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
		}

		if state.Time.Paused {
			return utils.EH.CreateSuccessEmbed(e, "⏸️ Paused", "The game clock is paused. Time cannot advance until you resume.")
		}
		return utils.EH.CreateSuccessEmbed(e, "▶️ Resumed", "The game clock is running again.")
	}
}

func intPtr(v int) *int {
	return &v
}
