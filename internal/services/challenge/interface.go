package challenge

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/castbot/castbot/internal/services/challenge Service

// Service defines the interface for the challenge minigame.
type Service interface {
	// Create opens a new challenge with the challenger's chosen object.
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Resolve settles a challenge against a responder's choice and
	// deletes it; a challenge resolves at most once.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Choices returns the playable objects in stable order.
	Choices() []Choice

	// ShuffledChoices returns the playable objects in random order, for
	// select-menu presentation.
	ShuffledChoices() []Choice
}
