package playerstore

import "github.com/castbot/castbot/internal/models"

// SaveInput contains parameters for saving the whole document.
type SaveInput struct {
	Document *models.StoreDocument
}

// MutateInput contains parameters for a locked read-modify-write cycle.
type MutateInput struct {
	Apply func(doc *models.StoreDocument) error
}

// GetPlayerInput contains parameters for retrieving a player record.
type GetPlayerInput struct {
	PlayerID string
}

// UpdatePlayerInput contains parameters for merging a patch onto a player
// record.
type UpdatePlayerInput struct {
	PlayerID string
	Patch    *models.PlayerPatch
}

// ClearPlayerEmojiInput contains parameters for clearing a player's
// stored emoji fields.
type ClearPlayerEmojiInput struct {
	PlayerID string
}
