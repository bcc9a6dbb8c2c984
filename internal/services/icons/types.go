package icons

import (
	"github.com/castbot/castbot/internal/models"
	"github.com/castbot/castbot/internal/platform"
	"github.com/castbot/castbot/internal/repositories/playerstore"
)

// Config holds the dependencies for the icons service.
type Config struct {
	// Platform client for avatar lookup and emoji management
	Platform platform.Client

	// Player store
	Store playerstore.Repository
}

// CreateIconsInput contains parameters for creating player icons.
type CreateIconsInput struct {
	GuildID string

	// UserIDs of the players to create icons for, one or two per call
	UserIDs []string
}

// Icon is one created player icon.
type Icon struct {
	UserID      string
	DisplayName string
	AvatarURL   string
	Emoji       models.Emoji
}

// CreateIconsOutput contains the created icons in input order.
type CreateIconsOutput struct {
	Icons []*Icon
}

// RemoveTribeIconsInput contains parameters for reclaiming the icons of
// a cleared tribe.
type RemoveTribeIconsInput struct {
	Snapshot *models.GuildSnapshot

	// RoleID of the cleared tribe
	RoleID string

	// RemainingTribeRoleIDs are the still-active tribe roles; players
	// holding any of them keep their icons
	RemainingTribeRoleIDs []string
}

// RemoveTribeIconsOutput reports how many icons were reclaimed.
type RemoveTribeIconsOutput struct {
	Removed int
}
