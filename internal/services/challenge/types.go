package challenge

import (
	"github.com/castbot/castbot/internal/common/clock"
	"github.com/castbot/castbot/internal/common/uuid"
	challengeRepo "github.com/castbot/castbot/internal/repositories/challenge"
)

// Config holds the dependencies for the challenge service.
type Config struct {
	// Challenge repository
	Repo challengeRepo.Repository

	// UUID generator for challenge IDs
	UUID uuid.UUID

	// Clock for challenge timestamps
	Clock clock.Clock

	// Optional seed for the choice shuffle, for testing
	Seed int64
}

// Choice is one playable object.
type Choice struct {
	Name        string
	Description string
}

// CreateInput contains parameters for opening a challenge.
type CreateInput struct {
	ChallengerID   string
	ChallengerName string
	ObjectName     string
}

// CreateOutput contains the opened challenge's ID.
type CreateOutput struct {
	ChallengeID string
}

// ResolveInput contains parameters for settling a challenge.
type ResolveInput struct {
	ChallengeID   string
	ResponderID   string
	ResponderName string
	ObjectName    string
}

// ResolveOutput contains the human-readable result line.
type ResolveOutput struct {
	Result string
}
