package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/utils"
)

// EmailChoiceHandler applies the chosen email response and replaces the
// choice buttons with the outcome.
func EmailChoiceHandler(b *booker.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		data, ok := e.Data.(discord.ButtonInteractionData)
		if !ok {
			return fmt.Errorf("invalid interaction type")
		}

		// Custom id layout: /email-choice/{email-id}/{choice-index}
		parts := strings.Split(strings.TrimPrefix(data.CustomID(), "/email-choice/"), "/")
		if len(parts) != 2 {
			return utils.EH.CreateComponentErrorEmbed(e, "Malformed email choice.")
		}
		emailID := parts[0]
		choice, err := strconv.Atoi(parts[1])
		if err != nil {
			return utils.EH.CreateComponentErrorEmbed(e, "Malformed email choice.")
		}

		before, err := b.Session.Snapshot()
		if err != nil {
			return utils.EH.CreateComponentErrorEmbed(e, "No game in progress.")
		}

		state, err := b.Session.HandleChoice(emailID, choice)
		if err != nil {
			return utils.EH.CreateComponentErrorEmbed(e, fmt.Sprintf("Could not apply that choice: %v", err))
		}

		var outcome strings.Builder
		if diff := state.Money - before.Money; diff != 0 {
			sign := ""
			if diff > 0 {
				sign = "+"
			}
			outcome.WriteString(fmt.Sprintf("💰 Money %s%s\n", sign, utils.FormatMoney(diff)))
		}
		if diff := state.Reputation - before.Reputation; diff != 0 {
			outcome.WriteString(fmt.Sprintf("⭐ Reputation %+d\n", diff))
		}
		if outcome.Len() == 0 {
			outcome.WriteString("Decision noted.")
		}

		embed := discord.Embed{
			Title:       "📧 Decision Made",
			Description: outcome.String(),
			Color:       utils.InfoColor,
		}
		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed},
			Components: &[]discord.ContainerComponent{},
		})
	}
}
