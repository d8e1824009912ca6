package commands

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/data"
	"github.com/squaredcircle/booker/booker/game"
	"github.com/squaredcircle/booker/booker/utils"
)

var Book = discord.SlashCommandCreate{
	Name:        "book",
	Description: "📝 Book a match for your next show",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "wrestler1",
			Description: "First participant id",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "wrestler2",
			Description: "Second participant id",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "type",
			Description: "Match stipulation",
			Required:    false,
			Choices:     stipulationChoices(),
		},
		discord.ApplicationCommandOptionString{
			Name:        "venue",
			Description: "Venue name",
			Required:    false,
		},
	},
}

// stipulationChoices exposes the bookable match types as command choices.
func stipulationChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(data.MatchTypes))
	for _, t := range data.MatchTypes {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{Name: t, Value: t})
	}
	return choices
}

func BookHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		d := e.SlashCommandInteractionData()
		first := d.String("wrestler1")
		second := d.String("wrestler2")

		matchType := d.String("type")
		if matchType == "" {
			matchType = "Singles Match"
		}

		state, err := b.Session.Snapshot()
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "No game in progress. Start one with /newgame.")
		}

		m := game.Match{
			ID:           fmt.Sprintf("match-%s", snowflake.New(time.Now())),
			Type:         matchType,
			Participants: []string{first, second},
			Venue:        d.String("venue"),
			Date:         state.CurrentDate,
		}

		next, err := b.Session.BookMatch(m)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Could not book the match: %v", err))
		}

		rating := b.RatingService.MatchRating(m, next.Wrestlers)
		story := b.Session.Storyline(next.Wrestlers[first].Name, next.Wrestlers[second].Name)

		names := make([]string, 0, len(m.Participants))
		for _, id := range m.Participants {
			names = append(names, next.Wrestlers[id].Name)
		}

		embed := discord.Embed{
			Title: fmt.Sprintf("📝 %s Booked", matchType),
			Description: fmt.Sprintf("**%s**\n\n*%s*\n\nProjected rating: **%d**",
				strings.Join(names, " vs "), story, rating),
			Color: utils.RatingColor(rating),
		}

		if b.PosterService != nil {
			show := game.Show{
				Name:    matchType,
				Venue:   m.Venue,
				Date:    m.Date,
				Matches: []game.Match{m},
			}
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()
			if poster, err := b.PosterService.GeneratePoster(ctx, show, next.Wrestlers); err == nil {
				return e.CreateMessage(discord.MessageCreate{
					Embeds: []discord.Embed{embed},
					Files: []*discord.File{
						discord.NewFile("poster.png", "", bytes.NewReader(poster)),
					},
				})
			}
		}

		return e.CreateMessage(discord.MessageCreate{Embeds: []discord.Embed{embed}})
	}
}
