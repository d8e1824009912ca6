package commands

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/data"
	"github.com/squaredcircle/booker/booker/game"
	"github.com/squaredcircle/booker/booker/utils"
)

var NewGame = discord.SlashCommandCreate{
	Name:        "newgame",
	Description: "🆕 Start a new career",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Your in-game name",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "mode",
			Description: "Run a promotion or wrestle yourself",
			Required:    true,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Booker", Value: string(game.ModeBooker)},
				{Name: "Wrestler", Value: string(game.ModeWrestler)},
			},
		},
		discord.ApplicationCommandOptionString{
			Name:        "company",
			Description: "The promotion you run or wrestle for",
			Required:    false,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "WWE", Value: "wwe"},
				{Name: "All Elite Wrestling", Value: "aew"},
				{Name: "New Japan Pro-Wrestling", Value: "njpw"},
			},
		},
	},
}

func NewGameHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		d := e.SlashCommandInteractionData()
		name := d.String("name")
		mode := game.Mode(d.String("mode"))
		companyID := d.String("company")

		if companyID == "" && mode == game.ModeBooker {
			companyID = "wwe"
		}
		if companyID != "" {
			if _, ok := data.CompanyByID(companyID); !ok {
				return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Unknown promotion: %s", companyID))
			}
		}

		state := b.Session.NewGame(game.Setup{
			PlayerName: name,
			CompanyID:  companyID,
			Mode:       mode,
			StartDate:  time.Now().Truncate(24 * time.Hour),
			Wrestlers:  data.Wrestlers,
			Companies:  data.Companies,
		})

		title := "📋 New Booker Career"
		description := fmt.Sprintf("Welcome, %s. You now run **%s** with %s in the bank.",
			name, companyName(state, state.PlayerCompany), utils.FormatMoney(state.Money))
		if mode == game.ModeWrestler {
			title = "🤼 New Wrestler Career"
			description = fmt.Sprintf("Welcome, %s. Your rookie career starts today with %s to your name.",
				name, utils.FormatMoney(state.Money))
		}

		return utils.EH.CreateSuccessEmbed(e, title, description)
	}
}

func companyName(state game.GameState, id string) string {
	if c, ok := state.Companies[id]; ok {
		return c.Name
	}
	return id
}
