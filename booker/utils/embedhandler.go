package utils

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// ResponseHandler provides standardized response methods for commands and components
type ResponseHandler struct{}

var EH = &ResponseHandler{}

// CreateErrorEmbed creates a standard error embed for command events
func (h *ResponseHandler) CreateErrorEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       ErrorColor,
		}},
	})
}

// CreateSuccessEmbed creates a standard success embed for command events
func (h *ResponseHandler) CreateSuccessEmbed(event *handler.CommandEvent, title, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       title,
			Description: message,
			Color:       SuccessColor,
		}},
	})
}

// CreateComponentErrorEmbed creates a standard error embed for component events
func (h *ResponseHandler) CreateComponentErrorEmbed(event *handler.ComponentEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       ErrorColor,
		}},
		Flags: discord.MessageFlagEphemeral,
	})
}

// UpdateComponentEmbed edits the component's message in place
func (h *ResponseHandler) UpdateComponentEmbed(event *handler.ComponentEvent, embed discord.Embed, components ...discord.ContainerComponent) error {
	update := discord.MessageUpdate{
		Embeds: &[]discord.Embed{embed},
	}
	if components != nil {
		update.Components = &components
	}
	return event.UpdateMessage(update)
}

// FormatMoney renders an amount as $1,234,567.
func FormatMoney(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return fmt.Sprintf("%s$%s", sign, string(out))
}
