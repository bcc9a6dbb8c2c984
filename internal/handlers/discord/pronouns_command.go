package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/castbot/castbot/internal/repositories/roleconfig"
)

// PronounsCommand edits the list of roles treated as pronoun roles.
type PronounsCommand struct {
	BaseCommand
	roles roleconfig.Repository
}

// NewPronounsCommand creates a new pronouns command handler
func NewPronounsCommand(roles roleconfig.Repository) *PronounsCommand {
	roleOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role1",
			Description: "Pronoun role",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role2",
			Description: "Pronoun role",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role3",
			Description: "Pronoun role",
			Required:    false,
		},
	}

	return &PronounsCommand{
		BaseCommand: BaseCommand{
			Name:        "pronouns",
			Description: "Manage the pronoun role list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add roles to the pronoun list",
					Options:     roleOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove roles from the pronoun list",
					Options:     roleOptions,
				},
			},
		},
		roles: roles,
	}
}

// Handle processes the pronouns command
func (c *PronounsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !HasManageRoles(i) {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Roles permission to edit pronoun roles.")
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return RespondWithEphemeralMessage(s, i, "Use `/pronouns add` or `/pronouns remove`.")
	}

	sub := options[0]
	var roleIDs []string
	for _, opt := range sub.Options {
		roleIDs = append(roleIDs, opt.RoleValue(nil, "").ID)
	}

	ctx := context.Background()

	switch sub.Name {
	case "add":
		output, err := c.roles.AddPronounRoles(ctx, &roleconfig.AddPronounRolesInput{RoleIDs: roleIDs})
		if err != nil {
			log.Printf("Error adding pronoun roles: %v", err)
			return RespondWithEphemeralMessage(s, i, userFacingError(err))
		}
		return RespondWithEphemeralMessage(s, i, pronounChangeMessage("Added", output.Added, "already in the list", output.AlreadyPresent))
	case "remove":
		output, err := c.roles.RemovePronounRoles(ctx, &roleconfig.RemovePronounRolesInput{RoleIDs: roleIDs})
		if err != nil {
			log.Printf("Error removing pronoun roles: %v", err)
			return RespondWithEphemeralMessage(s, i, userFacingError(err))
		}
		return RespondWithEphemeralMessage(s, i, pronounChangeMessage("Removed", output.Removed, "not in the list", output.NotFound))
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// pronounChangeMessage summarizes an add or remove call, mentioning the
// roles that were changed and those the call skipped.
func pronounChangeMessage(verb string, changed []string, skipReason string, skipped []string) string {
	var parts []string
	if len(changed) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s.", verb, roleMentions(changed)))
	}
	if len(skipped) > 0 {
		parts = append(parts, fmt.Sprintf("%s were %s.", roleMentions(skipped), skipReason))
	}
	if len(parts) == 0 {
		return "Nothing to do."
	}
	return strings.Join(parts, " ")
}

func roleMentions(roleIDs []string) string {
	mentions := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
	}
	return strings.Join(mentions, ", ")
}
