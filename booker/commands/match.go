package commands

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/game"
	"github.com/squaredcircle/booker/booker/match"
	"github.com/squaredcircle/booker/booker/utils"
)

var Match = discord.SlashCommandCreate{
	Name:        "match",
	Description: "🤼 Start an interactive match",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "opponent",
			Description: "Opponent wrestler id",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "wrestler",
			Description: "Your wrestler id (defaults to your career wrestler)",
			Required:    false,
		},
	},
}

func MatchHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		d := e.SlashCommandInteractionData()
		opponentID := d.String("opponent")

		state, err := b.Session.Snapshot()
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
		}

		playerID := d.String("wrestler")
		if playerID == "" {
			playerID = state.PlayerWrestler
		}
		if playerID == "" {
			return utils.EH.CreateErrorEmbed(e, "Pick a wrestler: you are not in wrestler mode.")
		}

		if err := b.Session.StartMatch(playerID, opponentID); err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Could not start the match: %v", err))
		}

		sim := b.Session.Simulator()
		embed := MatchEmbed(sim, nil)
		return e.CreateMessage(discord.MessageCreate{
			Embeds:     []discord.Embed{embed},
			Components: []discord.ContainerComponent{ActionButtons(sim)},
		})
	}
}

// MatchEmbed renders the current match state plus the latest turn.
func MatchEmbed(sim *match.Simulator, turn *match.Turn) discord.Embed {
	player := sim.Player()
	opponent := sim.Opponent()
	playerHealth, opponentHealth := sim.Health()
	playerMomentum, _ := sim.Momentum()

	description := fmt.Sprintf("```ansi\n"+
		"\x1b[1;36m%s\x1b[0m\n  HP %s  Momentum %d\n"+
		"\x1b[1;31m%s\x1b[0m\n  HP %s\n"+
		"```",
		player.Name, healthBar(playerHealth), playerMomentum,
		opponent.Name, healthBar(opponentHealth),
	)

	for _, line := range sim.Commentary() {
		description += fmt.Sprintf("> %s\n", line)
	}

	embed := discord.Embed{
		Title:       fmt.Sprintf("🤼 %s vs %s", player.Name, opponent.Name),
		Description: description,
		Color:       utils.EmbedDefaultColor,
	}

	if turn != nil && turn.Finished {
		winner := player.Name
		if turn.Winner == opponent.ID {
			winner = opponent.Name
		}
		embed.Title = fmt.Sprintf("🏆 %s wins!", winner)
		embed.Color = utils.SuccessColor
	}
	return embed
}

// ActionButtons builds the action row, disabling moves the player's
// momentum has not unlocked yet.
func ActionButtons(sim *match.Simulator) discord.ContainerComponent {
	momentum, _ := sim.Momentum()

	var buttons []discord.InteractiveComponent
	for _, action := range match.DefaultActions {
		button := discord.NewSecondaryButton(
			action.Name,
			fmt.Sprintf("/match-action/%s", action.ID),
		)
		if action.Gated() && momentum < action.Requirements.Momentum {
			button = button.AsDisabled()
		}
		if action.Type == game.ActionFinisher {
			button = discord.NewDangerButton(action.Name, fmt.Sprintf("/match-action/%s", action.ID))
			if action.Gated() && momentum < action.Requirements.Momentum {
				button = button.AsDisabled()
			}
		}
		buttons = append(buttons, button)
	}
	return discord.NewActionRow(buttons...)
}

func healthBar(health int) string {
	const barLength = 10
	filled := health * barLength / 100
	if filled < 0 {
		filled = 0
	}
	bar := ""
	for i := 0; i < barLength; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return fmt.Sprintf("%s %d/100", bar, health)
}
