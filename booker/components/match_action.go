package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/commands"
	"github.com/squaredcircle/booker/booker/match"
	"github.com/squaredcircle/booker/booker/session"
	"github.com/squaredcircle/booker/booker/utils"
)

// MatchActionHandler resolves the button press for one in-ring action and
// updates the match message in place.
func MatchActionHandler(b *booker.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		data, ok := e.Data.(discord.ButtonInteractionData)
		if !ok {
			return fmt.Errorf("invalid interaction type")
		}

		actionID := strings.TrimPrefix(data.CustomID(), "/match-action/")
		turn, err := b.Session.ExecuteAction(actionID)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrNoMatch):
				return utils.EH.CreateComponentErrorEmbed(e, "No match in progress. Start one with /match.")
			case errors.Is(err, session.ErrTurnInFlight):
				return utils.EH.CreateComponentErrorEmbed(e, "Hold on, the last move is still resolving.")
			default:
				return utils.EH.CreateComponentErrorEmbed(e, fmt.Sprintf("Could not execute the move: %v", err))
			}
		}

		sim := b.Session.Simulator()
		if sim == nil || turn.Finished {
			// Match ended; the session already folded the result in.
			state, err := b.Session.Snapshot()
			if err != nil {
				return utils.EH.CreateComponentErrorEmbed(e, "Failed to read game state.")
			}

			winner := turn.Winner
			if w, ok := state.Wrestlers[winner]; ok {
				winner = w.Name
			}
			embed := discord.Embed{
				Title:       fmt.Sprintf("🏆 %s wins!", winner),
				Description: lastCommentary(turn),
				Color:       utils.SuccessColor,
			}
			return e.UpdateMessage(discord.MessageUpdate{
				Embeds:     &[]discord.Embed{embed},
				Components: &[]discord.ContainerComponent{},
			})
		}

		embed := commands.MatchEmbed(sim, &turn)
		row := commands.ActionButtons(sim)
		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed},
			Components: &[]discord.ContainerComponent{row},
		})
	}
}

func lastCommentary(turn match.Turn) string {
	lines := []string{turn.Player.Commentary}
	if turn.Opponent != nil {
		lines = append(lines, turn.Opponent.Commentary)
	}
	return strings.Join(lines, "\n")
}
