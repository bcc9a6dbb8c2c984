package platform

import (
	"context"

	"github.com/castbot/castbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/castbot/castbot/internal/platform Client

// Client is the outbound interface to the chat platform's REST API. It
// covers only what the bot needs: a fresh guild snapshot, avatar lookup,
// and emoji management. Message sending stays with the interaction
// handlers, which already hold the session.
type Client interface {
	// GuildSnapshot fetches a point-in-time view of a guild's roles and
	// members.
	GuildSnapshot(ctx context.Context, input *GuildSnapshotInput) (*models.GuildSnapshot, error)

	// MemberAvatarURL resolves a member's guild avatar, falling back to
	// their account avatar.
	MemberAvatarURL(ctx context.Context, input *MemberAvatarURLInput) (*MemberAvatarURLOutput, error)

	// CreateEmoji uploads an image as a guild emoji.
	CreateEmoji(ctx context.Context, input *CreateEmojiInput) (*CreateEmojiOutput, error)

	// DeleteEmoji removes a guild emoji by ID.
	DeleteEmoji(ctx context.Context, input *DeleteEmojiInput) error
}

// GuildSnapshotInput contains parameters for fetching a guild snapshot.
type GuildSnapshotInput struct {
	GuildID string
}

// MemberAvatarURLInput contains parameters for resolving a member avatar.
type MemberAvatarURLInput struct {
	GuildID string
	UserID  string
}

// MemberAvatarURLOutput contains a member's avatar URL and display name.
type MemberAvatarURLOutput struct {
	URL         string
	DisplayName string
}

// CreateEmojiInput contains parameters for creating a guild emoji.
type CreateEmojiInput struct {
	GuildID string

	// Name of the emoji; the bot uses the player's user ID
	Name string

	// ImageURL is fetched and uploaded as the emoji image
	ImageURL string
}

// CreateEmojiOutput contains the created emoji handle.
type CreateEmojiOutput struct {
	Emoji models.Emoji
}

// DeleteEmojiInput contains parameters for deleting a guild emoji.
type DeleteEmojiInput struct {
	GuildID string
	EmojiID string
}
