package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/castbot/castbot/internal/platform"
	"github.com/castbot/castbot/internal/repositories/playerstore"
	"github.com/castbot/castbot/internal/repositories/roleconfig"
	"github.com/castbot/castbot/internal/services/castlist"
)

// renderDocuments converts castlist documents into Discord embeds
func renderDocuments(docs []*castlist.Document) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(docs))
	for _, doc := range docs {
		embed := &discordgo.MessageEmbed{
			Title: doc.Title,
			Color: doc.Color,
		}
		if doc.AuthorName != "" {
			embed.Author = &discordgo.MessageEmbedAuthor{
				Name:    doc.AuthorName,
				IconURL: doc.AuthorIconURL,
			}
		}
		for _, f := range doc.Fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   f.Name,
				Value:  f.Value,
				Inline: f.Inline,
			})
		}
		embeds = append(embeds, embed)
	}
	return embeds
}

// userFacingError translates an internal error into a message safe to show
// the invoking user.
func userFacingError(err error) string {
	var limitErr *platform.ResourceLimitError
	switch {
	case errors.As(err, &limitErr):
		if limitErr.Limit > 0 {
			return fmt.Sprintf("The server's %s limit (%d) has been reached. Free up some slots and try again.", limitErr.Resource, limitErr.Limit)
		}
		return fmt.Sprintf("The server's %s limit has been reached. Free up some slots and try again.", limitErr.Resource)
	case errors.Is(err, platform.ErrNotFound):
		return "Could not find that user, role, or resource. Check the ID and try again."
	case errors.Is(err, playerstore.ErrStorage):
		return "Player data storage is unavailable right now. Try again in a moment."
	case errors.Is(err, roleconfig.ErrConfig):
		return "The saved role configuration could not be read. An admin needs to repair the data files."
	case errors.Is(err, platform.ErrPlatform):
		return "A Discord API call failed. The bot may be missing a permission."
	default:
		return "Something went wrong handling this command."
	}
}
