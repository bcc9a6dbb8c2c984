package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/castbot/castbot/internal/platform"
	"github.com/castbot/castbot/internal/services/castlist"
	"github.com/castbot/castbot/internal/services/roster"
)

// CastlistCommand posts the current castlist: a full aggregation pass
// over the guild followed by the rendered tribe embeds.
type CastlistCommand struct {
	BaseCommand
	platform platform.Client
	roster   roster.Service
	castlist castlist.Service
}

// NewCastlistCommand creates a new castlist command handler
func NewCastlistCommand(client platform.Client, rosterSvc roster.Service, castlistSvc castlist.Service) *CastlistCommand {
	return &CastlistCommand{
		BaseCommand: BaseCommand{
			Name:        "castlist",
			Description: "Display the dynamic castlist",
		},
		platform: client,
		roster:   rosterSvc,
		castlist: castlistSvc,
	}
}

// Handle processes the castlist command
func (c *CastlistCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	// The member fetch can exceed the 3-second interaction deadline, so
	// acknowledge first and edit the result in.
	if err := RespondWithDeferred(s, i); err != nil {
		return err
	}

	ctx := context.Background()

	snapshot, err := c.platform.GuildSnapshot(ctx, &platform.GuildSnapshotInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		log.Printf("Error fetching guild snapshot: %v", err)
		return EditResponseMessage(s, i, userFacingError(err))
	}

	if _, err := c.roster.Refresh(ctx, &roster.RefreshInput{Snapshot: snapshot}); err != nil {
		log.Printf("Error refreshing roster: %v", err)
		return EditResponseMessage(s, i, userFacingError(err))
	}

	output, err := c.castlist.Build(ctx, &castlist.BuildInput{Snapshot: snapshot})
	if err != nil {
		log.Printf("Error building castlist: %v", err)
		return EditResponseMessage(s, i, userFacingError(err))
	}

	if len(output.Documents) == 0 {
		return EditResponseMessage(s, i, "No tribes are configured. Use `/settribe` to add one.")
	}

	return EditResponseEmbeds(s, i, renderDocuments(output.Documents))
}
