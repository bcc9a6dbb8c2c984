package challenge

import (
	"context"

	"github.com/castbot/castbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/castbot/castbot/internal/repositories/challenge Repository

// Repository defines the interface for in-flight challenge persistence.
// Entries are single-use: the resolver deletes them, and unanswered
// entries expire after the configured TTL instead of living forever.
type Repository interface {
	// SaveChallenge persists a challenge with the store's TTL.
	SaveChallenge(ctx context.Context, input *SaveChallengeInput) error

	// GetChallenge retrieves a challenge by ID.
	GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error)

	// DeleteChallenge removes a challenge. Deleting an absent challenge
	// is not an error.
	DeleteChallenge(ctx context.Context, input *DeleteChallengeInput) error
}
