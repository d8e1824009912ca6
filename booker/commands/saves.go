package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/squaredcircle/booker/booker"
	"github.com/squaredcircle/booker/booker/database/repositories"
	"github.com/squaredcircle/booker/booker/utils"
)

var Saves = discord.SlashCommandCreate{
	Name:        "saves",
	Description: "💾 Manage your save slots",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "List all save slots",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "save",
			Description: "Save the current game into a slot",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "slot",
					Description: "Slot number (1-5)",
					Required:    true,
					MinValue:    intPtr(repositories.MinSlot),
					MaxValue:    intPtr(repositories.MaxSlot),
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "load",
			Description: "Load a saved game",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "slot",
					Description: "Slot number (1-5)",
					Required:    true,
					MinValue:    intPtr(repositories.MinSlot),
					MaxValue:    intPtr(repositories.MaxSlot),
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "delete",
			Description: "Delete a save slot",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "slot",
					Description: "Slot number (1-5)",
					Required:    true,
					MinValue:    intPtr(repositories.MinSlot),
					MaxValue:    intPtr(repositories.MaxSlot),
				},
			},
		},
	},
}

func SavesHandler(b *booker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		d := e.SlashCommandInteractionData()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		switch *d.SubCommandName {
		case "list":
			return listSaves(ctx, b, e)
		case "save":
			return saveGame(ctx, b, e, d.Int("slot"))
		case "load":
			return loadGame(ctx, b, e, d.Int("slot"))
		case "delete":
			return deleteSave(ctx, b, e, d.Int("slot"))
		default:
			return utils.EH.CreateErrorEmbed(e, "Unknown subcommand.")
		}
	}
}

func listSaves(ctx context.Context, b *booker.Bot, e *handler.CommandEvent) error {
	slots, err := b.SaveRepository.List(ctx)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to list save slots.")
	}

	occupied := make(map[int]repositories.SlotSummary, len(slots))
	for _, s := range slots {
		occupied[s.Slot] = s
	}

	var description strings.Builder
	description.WriteString("```ansi\n")
	for slot := repositories.MinSlot; slot <= repositories.MaxSlot; slot++ {
		if s, ok := occupied[slot]; ok {
			description.WriteString(fmt.Sprintf("\x1b[1;36m[%d]\x1b[0m %s\n    %s · %s · %s\n",
				slot, s.Name, s.PlayerName, utils.FormatMoney(s.Money), s.SavedAt.Format("Jan 2 15:04")))
		} else {
			description.WriteString(fmt.Sprintf("\x1b[0;37m[%d] empty\x1b[0m\n", slot))
		}
	}
	description.WriteString("```")

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "💾 Save Slots",
			Description: description.String(),
			Color:       utils.EmbedDefaultColor,
		}},
	})
}

func saveGame(ctx context.Context, b *booker.Bot, e *handler.CommandEvent, slot int) error {
	if err := b.Session.Save(ctx, slot); err != nil {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Could not save: %v", err))
	}

	if b.BackupService != nil {
		state, err := b.Session.Snapshot()
		if err == nil {
			bundle := state.Bundle(time.Now())
			if err := b.BackupService.Upload(ctx, slot, &bundle); err != nil {
				return utils.EH.CreateSuccessEmbed(e, "💾 Saved",
					fmt.Sprintf("Game saved to slot %d, but the cloud backup failed.", slot))
			}
		}
	}

	return utils.EH.CreateSuccessEmbed(e, "💾 Saved", fmt.Sprintf("Game saved to slot %d.", slot))
}

func loadGame(ctx context.Context, b *booker.Bot, e *handler.CommandEvent, slot int) error {
	state, err := b.Session.Load(ctx, slot)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNoSave):
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Slot %d is empty.", slot))
		case errors.Is(err, repositories.ErrCorruptSave):
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Slot %d holds a corrupt save and cannot be loaded.", slot))
		default:
			return utils.EH.CreateErrorEmbed(e, "Failed to load the save.")
		}
	}
	b.RatingService.InvalidateCache()

	return utils.EH.CreateSuccessEmbed(e, "📂 Loaded",
		fmt.Sprintf("Welcome back, %s. It is %s and you have %s.",
			state.PlayerName, state.CurrentDate.Format("January 2, 2006"), utils.FormatMoney(state.Money)))
}

func deleteSave(ctx context.Context, b *booker.Bot, e *handler.CommandEvent, slot int) error {
	if err := b.SaveRepository.Delete(ctx, slot); err != nil {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Could not delete slot %d.", slot))
	}
	if b.BackupService != nil {
		_ = b.BackupService.Delete(ctx, slot)
	}
	return utils.EH.CreateSuccessEmbed(e, "🗑️ Deleted", fmt.Sprintf("Slot %d is now empty.", slot))
}
