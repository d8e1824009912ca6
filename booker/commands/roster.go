package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/game"
	"github.com/squaredcircle/booker/booker/services"
	"github.com/squaredcircle/booker/booker/utils"
)

const wrestlersPerPage = 8

var Roster = discord.SlashCommandCreate{
	Name:        "roster",
	Description: "📋 Browse a promotion's roster",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "company",
			Description: "Promotion id (defaults to your company)",
			Required:    false,
		},
	},
}

var Search = discord.SlashCommandCreate{
	Name:        "search",
	Description: "🔍 Find wrestlers by name",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "query",
			Description: "Name to search for (fuzzy)",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "company",
			Description: "Limit the search to one promotion",
			Required:    false,
		},
	},
}

var Train = discord.SlashCommandCreate{
	Name:        "train",
	Description: "💪 Send a wrestler to training",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "wrestler",
			Description: "Wrestler id",
			Required:    true,
		},
	},
}

var Release = discord.SlashCommandCreate{
	Name:        "release",
	Description: "✂️ Release a wrestler from their contract",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "wrestler",
			Description: "Wrestler id",
			Required:    true,
		},
	},
}

func RosterHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		state, err := b.Session.Snapshot()
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
		}

		companyID := e.SlashCommandInteractionData().String("company")
		if companyID == "" {
			companyID = state.PlayerCompany
		}
		company, ok := state.Companies[companyID]
		if !ok {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Unknown promotion: %s", companyID))
		}

		roster := b.SearchService.Search(state.Wrestlers, "", services.SearchFilters{Company: companyID})
		if len(roster) == 0 {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("%s has no wrestlers under contract.", company.Name))
		}

		totalPages := int(math.Ceil(float64(len(roster)) / float64(wrestlersPerPage)))

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				startIdx := page * wrestlersPerPage
				endIdx := min(startIdx+wrestlersPerPage, len(roster))

				var description strings.Builder
				description.WriteString("```ansi\n")
				for _, w := range roster[startIdx:endIdx] {
					description.WriteString(formatRosterLine(w))
				}
				description.WriteString("```")

				embed.
					SetTitle(fmt.Sprintf("📋 %s Roster", company.Name)).
					SetDescription(description.String()).
					SetColor(utils.EmbedDefaultColor).
					SetFooter(fmt.Sprintf("Page %d/%d • %d wrestlers", page+1, totalPages, len(roster)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func SearchHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		state, err := b.Session.Snapshot()
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
		}

		d := e.SlashCommandInteractionData()
		query := strings.TrimSpace(d.String("query"))

		matches := b.SearchService.Search(state.Wrestlers, query, services.SearchFilters{
			Company: d.String("company"),
		})
		if len(matches) == 0 {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No wrestlers match: %s", query))
		}
		if len(matches) > wrestlersPerPage {
			matches = matches[:wrestlersPerPage]
		}

		var description strings.Builder
		description.WriteString("```ansi\n")
		for _, w := range matches {
			description.WriteString(formatRosterLine(w))
		}
		description.WriteString("```")

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("🔍 Results for %q", query),
				Description: description.String(),
				Color:       utils.EmbedDefaultColor,
			}},
		})
	}
}

func TrainHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		wrestlerID := e.SlashCommandInteractionData().String("wrestler")

		state, err := b.Session.Train(wrestlerID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Could not train: %v", err))
		}
		b.RatingService.InvalidateCache()

		w := state.Wrestlers[wrestlerID]
		return utils.EH.CreateSuccessEmbed(e, "💪 Training Complete",
			fmt.Sprintf("%s hit the Performance Center. Wrestling %d, fatigue %d.", w.Name, w.Wrestling, w.Fatigue))
	}
}

func ReleaseHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		wrestlerID := e.SlashCommandInteractionData().String("wrestler")

		before, err := b.Session.Snapshot()
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
		}
		name := wrestlerID
		if w, ok := before.Wrestlers[wrestlerID]; ok {
			name = w.Name
		}

		if _, err := b.Session.ReleaseWrestler(wrestlerID); err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Could not release: %v", err))
		}
		b.RatingService.InvalidateCache()

		return utils.EH.CreateSuccessEmbed(e, "✂️ Released",
			fmt.Sprintf("%s has been released from their contract. We wish them the best in their future endeavors.", name))
	}
}

func formatRosterLine(w game.Wrestler) string {
	status := ""
	if w.Injured {
		status = " \x1b[31m[INJ]\x1b[0m"
	}
	return fmt.Sprintf("\x1b[32m%-24s\x1b[0m OVR %2d  %s%s\n",
		w.Name, w.Overall, alignmentIcon(w.Alignment), status)
}

func alignmentIcon(a game.Alignment) string {
	switch a {
	case game.AlignmentFace:
		return "😇"
	case game.AlignmentHeel:
		return "😈"
	default:
		return "😐"
	}
}
