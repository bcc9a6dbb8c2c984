package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/castbot/castbot/internal/models"
	"github.com/castbot/castbot/internal/repositories/playerstore"
	"github.com/castbot/castbot/internal/services/icons"
)

// SetAgeCommand stores an admin-entered age on a player record.
type SetAgeCommand struct {
	BaseCommand
	store playerstore.Repository
}

// NewSetAgeCommand creates a new setage command handler
func NewSetAgeCommand(store playerstore.Repository) *SetAgeCommand {
	return &SetAgeCommand{
		BaseCommand: BaseCommand{
			Name:        "setage",
			Description: "Set a player's age on the castlist",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Player to update",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "age",
					Description: "Age to display",
					Required:    true,
				},
			},
		},
		store: store,
	}
}

// Handle processes the setage command
func (c *SetAgeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !HasManageRoles(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Roles permission to edit player data.")
	}

	var (
		userID string
		age    string
	)
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "player":
			userID = opt.UserValue(nil).ID
		case "age":
			age = opt.StringValue()
		}
	}

	_, err := c.store.UpdatePlayer(context.Background(), &playerstore.UpdatePlayerInput{
		PlayerID: userID,
		Patch:    &models.PlayerPatch{Age: &age},
	})
	if err != nil {
		log.Printf("Error setting age for %s: %v", userID, err)
		return RespondWithEphemeralMessage(s, i, userFacingError(err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Age for <@%s> set to %s.", userID, age))
}

// PlayerIconsCommand uploads guild emojis from player avatars.
type PlayerIconsCommand struct {
	BaseCommand
	icons icons.Service
}

// NewPlayerIconsCommand creates a new playericons command handler
func NewPlayerIconsCommand(iconsSvc icons.Service) *PlayerIconsCommand {
	return &PlayerIconsCommand{
		BaseCommand: BaseCommand{
			Name:        "playericons",
			Description: "Create emoji icons from player avatars",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player1",
					Description: "First player",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player2",
					Description: "Second player",
					Required:    false,
				},
			},
		},
		icons: iconsSvc,
	}
}

// Handle processes the playericons command
func (c *PlayerIconsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !HasManageRoles(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Roles permission to manage player icons.")
	}

	var userIDs []string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "player1", "player2":
			userIDs = append(userIDs, opt.UserValue(nil).ID)
		}
	}

	// Emoji upload is an image fetch plus a Discord round trip per
	// player, so acknowledge first.
	if err := RespondWithDeferred(s, i); err != nil {
		return err
	}

	output, err := c.icons.CreateIcons(context.Background(), &icons.CreateIconsInput{
		GuildID: i.GuildID,
		UserIDs: userIDs,
	})
	if err != nil {
		log.Printf("Error creating player icons: %v", err)
		return EditResponseMessage(s, i, userFacingError(err))
	}

	var lines []string
	for _, icon := range output.Icons {
		lines = append(lines, fmt.Sprintf("%s %s", icon.Emoji.Token(), icon.DisplayName))
	}
	return EditResponseMessage(s, i, "Created icons:\n"+strings.Join(lines, "\n"))
}

// checkDataMaxChars caps the dump so it fits in one Discord message.
const checkDataMaxChars = 1800

// CheckDataCommand dumps the raw player store for debugging.
type CheckDataCommand struct {
	BaseCommand
	store playerstore.Repository
}

// NewCheckDataCommand creates a new checkdata command handler
func NewCheckDataCommand(store playerstore.Repository) *CheckDataCommand {
	return &CheckDataCommand{
		BaseCommand: BaseCommand{
			Name:        "checkdata",
			Description: "Show the raw stored player data",
		},
		store: store,
	}
}

// Handle processes the checkdata command
func (c *CheckDataCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !HasManageRoles(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Roles permission to inspect player data.")
	}

	doc, err := c.store.Load(context.Background())
	if err != nil {
		log.Printf("Error loading player store: %v", err)
		return RespondWithEphemeralMessage(s, i, userFacingError(err))
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "Failed to format the stored data.")
	}

	dump := string(raw)
	if len(dump) > checkDataMaxChars {
		dump = dump[:checkDataMaxChars] + "\n... (truncated)"
	}

	return RespondWithEphemeralMessage(s, i, "```json\n"+dump+"\n```")
}
