package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/castbot/castbot/internal/platform"
	"github.com/castbot/castbot/internal/repositories/roleconfig"
	"github.com/castbot/castbot/internal/services/icons"
)

// SetTribeCommand binds a guild role (and optional emoji) to one of the
// four tribe slots.
type SetTribeCommand struct {
	BaseCommand
	roles roleconfig.Repository
}

// NewSetTribeCommand creates a new settribe command handler
func NewSetTribeCommand(roles roleconfig.Repository) *SetTribeCommand {
	minSlot := float64(1)
	return &SetTribeCommand{
		BaseCommand: BaseCommand{
			Name:        "settribe",
			Description: "Assign a role to a tribe slot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "slot",
					Description: "Tribe slot (1-4)",
					Required:    true,
					MinValue:    &minSlot,
					MaxValue:    4,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Role whose members form the tribe",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "emoji",
					Description: "Emoji shown next to the tribe header",
					Required:    false,
				},
			},
		},
		roles: roles,
	}
}

// Handle processes the settribe command
func (c *SetTribeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !HasManageRoles(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Roles permission to configure tribes.")
	}

	var (
		slot   int
		roleID string
		emoji  string
	)
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "slot":
			slot = int(opt.IntValue())
		case "role":
			roleID = opt.RoleValue(nil, "").ID
		case "emoji":
			emoji = opt.StringValue()
		}
	}

	err := c.roles.SetTribeSlot(context.Background(), &roleconfig.SetTribeSlotInput{
		Slot:   slot,
		RoleID: roleID,
		Emoji:  emoji,
	})
	if err != nil {
		log.Printf("Error setting tribe slot %d: %v", slot, err)
		return RespondWithEphemeralMessage(s, i, userFacingError(err))
	}

	msg := fmt.Sprintf("Tribe %d set to <@&%s>.", slot, roleID)
	if emoji != "" {
		msg = fmt.Sprintf("Tribe %d set to <@&%s> %s.", slot, roleID, emoji)
	}
	return RespondWithEphemeralMessage(s, i, msg)
}

// ClearTribeCommand empties one tribe slot and reclaims the icons of
// players who belonged only to that tribe.
type ClearTribeCommand struct {
	BaseCommand
	roles    roleconfig.Repository
	platform platform.Client
	icons    icons.Service
}

// NewClearTribeCommand creates a new cleartribe command handler
func NewClearTribeCommand(roles roleconfig.Repository, client platform.Client, iconsSvc icons.Service) *ClearTribeCommand {
	minSlot := float64(1)
	return &ClearTribeCommand{
		BaseCommand: BaseCommand{
			Name:        "cleartribe",
			Description: "Clear one tribe slot",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "slot",
					Description: "Tribe slot (1-4)",
					Required:    true,
					MinValue:    &minSlot,
					MaxValue:    4,
				},
			},
		},
		roles:    roles,
		platform: client,
		icons:    iconsSvc,
	}
}

// Handle processes the cleartribe command
func (c *ClearTribeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !HasManageRoles(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Roles permission to configure tribes.")
	}

	var slot int
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "slot" {
			slot = int(opt.IntValue())
		}
	}

	if err := RespondWithDeferred(s, i); err != nil {
		return err
	}

	ctx := context.Background()

	tribes, err := c.roles.LoadTribes(ctx)
	if err != nil {
		log.Printf("Error loading tribes: %v", err)
		return EditResponseMessage(s, i, userFacingError(err))
	}

	cfg := tribes.Slot(slot)
	if !cfg.Active() {
		return EditResponseMessage(s, i, fmt.Sprintf("Tribe %d is already empty.", slot))
	}
	clearedRoleID := cfg.RoleID

	if err := c.roles.ClearTribeSlot(ctx, &roleconfig.ClearTribeSlotInput{Slot: slot}); err != nil {
		log.Printf("Error clearing tribe slot %d: %v", slot, err)
		return EditResponseMessage(s, i, userFacingError(err))
	}

	removed, err := reclaimTribeIcons(ctx, c.platform, c.roles, c.icons, i.GuildID, []string{clearedRoleID})
	if err != nil {
		log.Printf("Error reclaiming icons for role %s: %v", clearedRoleID, err)
		return EditResponseMessage(s, i, fmt.Sprintf("Tribe %d cleared, but reclaiming player icons failed.", slot))
	}

	return EditResponseMessage(s, i, fmt.Sprintf("Tribe %d cleared. Reclaimed %d player icon(s).", slot, removed))
}

// ClearTribesCommand empties every tribe slot at once.
type ClearTribesCommand struct {
	BaseCommand
	roles    roleconfig.Repository
	platform platform.Client
	icons    icons.Service
}

// NewClearTribesCommand creates a new cleartribes command handler
func NewClearTribesCommand(roles roleconfig.Repository, client platform.Client, iconsSvc icons.Service) *ClearTribesCommand {
	return &ClearTribesCommand{
		BaseCommand: BaseCommand{
			Name:        "cleartribes",
			Description: "Clear all tribe slots",
		},
		roles:    roles,
		platform: client,
		icons:    iconsSvc,
	}
}

// Handle processes the cleartribes command
func (c *ClearTribesCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !HasManageRoles(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Roles permission to configure tribes.")
	}

	if err := RespondWithDeferred(s, i); err != nil {
		return err
	}

	ctx := context.Background()

	tribes, err := c.roles.LoadTribes(ctx)
	if err != nil {
		log.Printf("Error loading tribes: %v", err)
		return EditResponseMessage(s, i, userFacingError(err))
	}

	clearedRoleIDs := tribes.ActiveRoleIDs()
	if len(clearedRoleIDs) == 0 {
		return EditResponseMessage(s, i, "No tribes are configured.")
	}

	if err := c.roles.ClearAllTribes(ctx); err != nil {
		log.Printf("Error clearing tribes: %v", err)
		return EditResponseMessage(s, i, userFacingError(err))
	}

	removed, err := reclaimTribeIcons(ctx, c.platform, c.roles, c.icons, i.GuildID, clearedRoleIDs)
	if err != nil {
		log.Printf("Error reclaiming icons: %v", err)
		return EditResponseMessage(s, i, "Tribes cleared, but reclaiming player icons failed.")
	}

	return EditResponseMessage(s, i, fmt.Sprintf("All tribes cleared. Reclaimed %d player icon(s).", removed))
}

// reclaimTribeIcons removes the icons of players who held any of the
// cleared roles and hold none of the tribes still configured. It runs
// after the slot config has been persisted, so the remaining roles are
// read back from the repository.
func reclaimTribeIcons(ctx context.Context, client platform.Client, roles roleconfig.Repository, iconsSvc icons.Service, guildID string, clearedRoleIDs []string) (int, error) {
	tribes, err := roles.LoadTribes(ctx)
	if err != nil {
		return 0, err
	}
	remaining := tribes.ActiveRoleIDs()

	snapshot, err := client.GuildSnapshot(ctx, &platform.GuildSnapshotInput{GuildID: guildID})
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, roleID := range clearedRoleIDs {
		output, err := iconsSvc.RemoveTribeIcons(ctx, &icons.RemoveTribeIconsInput{
			Snapshot:              snapshot,
			RoleID:                roleID,
			RemainingTribeRoleIDs: remaining,
		})
		if err != nil {
			return removed, err
		}
		removed += output.Removed
	}
	return removed, nil
}
