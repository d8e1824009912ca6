package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/utils"
)

const emailsPerPage = 5

var Inbox = discord.SlashCommandCreate{
	Name:        "inbox",
	Description: "📧 Read your emails",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "email",
			Description: "Open a specific email by id",
			Required:    false,
		},
	},
}

func InboxHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		state, err := b.Session.Snapshot()
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
		}

		if emailID := e.SlashCommandInteractionData().String("email"); emailID != "" {
			return openEmail(b, e, emailID)
		}

		if len(state.Inbox) == 0 {
			return utils.EH.CreateSuccessEmbed(e, "📧 Inbox", "No emails yet. The office is quiet.")
		}

		// Newest first
		emails := make([]int, len(state.Inbox))
		for i := range state.Inbox {
			emails[i] = len(state.Inbox) - 1 - i
		}

		totalPages := int(math.Ceil(float64(len(emails)) / float64(emailsPerPage)))

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				startIdx := page * emailsPerPage
				endIdx := min(startIdx+emailsPerPage, len(emails))

				var description strings.Builder
				for _, idx := range emails[startIdx:endIdx] {
					email := state.Inbox[idx]
					marker := "📩"
					if email.Read {
						marker = "📭"
					}
					description.WriteString(fmt.Sprintf("%s **%s**\n", marker, email.Subject))
					description.WriteString(fmt.Sprintf("-# from %s · `%s`\n\n", email.From, email.ID))
				}

				embed.
					SetTitle("📧 Inbox").
					SetDescription(description.String()).
					SetColor(utils.EmbedDefaultColor).
					SetFooter(fmt.Sprintf("Page %d/%d • %d unread", page+1, totalPages, state.UnreadCount()), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func openEmail(b *booker.Bot, e *handler.CommandEvent, emailID string) error {
	state, err := b.Session.OpenEmail(emailID)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No email with id `%s`.", emailID))
	}

	var email *discord.Embed
	for _, item := range state.Inbox {
		if item.ID == emailID {
			embed := discord.Embed{
				Title:       fmt.Sprintf("📧 %s", item.Subject),
				Description: item.Content,
				Color:       utils.InfoColor,
				Footer: &discord.EmbedFooter{
					Text: fmt.Sprintf("From %s", item.From),
				},
				Timestamp: &item.Date,
			}
			email = &embed

			var buttons []discord.InteractiveComponent
			for i, choice := range item.Choices {
				buttons = append(buttons, discord.NewPrimaryButton(
					choice.Text,
					fmt.Sprintf("/email-choice/%s/%d", item.ID, i),
				))
			}
			if len(buttons) > 0 {
				return e.CreateMessage(discord.MessageCreate{
					Embeds:     []discord.Embed{embed},
					Components: []discord.ContainerComponent{discord.NewActionRow(buttons...)},
				})
			}
			break
		}
	}

	if email == nil {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No email with id `%s`.", emailID))
	}
	return e.CreateMessage(discord.MessageCreate{Embeds: []discord.Embed{*email}})
}
