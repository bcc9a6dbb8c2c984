package playerstore

import (
	"context"

	"github.com/castbot/castbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/castbot/castbot/internal/repositories/playerstore Repository

// Repository defines the interface for player data persistence.
//
// The backing medium is a single document read and written whole. Each
// method holds the store lock for its full read-modify-write cycle, so
// single calls never lose updates to each other; callers composing a
// Load followed by a Save should use Mutate instead.
type Repository interface {
	// Load returns the current document, creating and seeding it on
	// first access.
	Load(ctx context.Context) (*models.StoreDocument, error)

	// Save overwrites the backing medium with the given document.
	Save(ctx context.Context, input *SaveInput) error

	// Mutate applies a function to the document and persists the result,
	// all under the store lock.
	Mutate(ctx context.Context, input *MutateInput) error

	// GetPlayer retrieves a player record, returning nil (not an error)
	// when the player is absent.
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerRecord, error)

	// UpdatePlayer shallow-merges a patch onto a player record, creating
	// the record if needed, then persists the whole document.
	UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*models.PlayerRecord, error)

	// ClearPlayerEmoji removes the stored emoji fields from a player
	// record, leaving the rest of the record intact.
	ClearPlayerEmoji(ctx context.Context, input *ClearPlayerEmojiInput) error
}

// TribeLoader provides the tribe configuration used to seed a new store
// document.
type TribeLoader interface {
	LoadTribes(ctx context.Context) (*models.TribeConfig, error)
}
