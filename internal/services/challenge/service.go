package challenge

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/castbot/castbot/internal/common/clock"
	"github.com/castbot/castbot/internal/common/uuid"
	"github.com/castbot/castbot/internal/models"
	challengeRepo "github.com/castbot/castbot/internal/repositories/challenge"
)

// Define errors
var (
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilRepo           = errors.New("challenge repository cannot be nil")
	ErrNilUUIDGenerator  = errors.New("UUID generator cannot be nil")
	ErrNilClock          = errors.New("clock cannot be nil")
	ErrUnknownChoice     = errors.New("unknown object choice")
	ErrChallengeNotFound = errors.New("challenge not found or already resolved")
)

// choices in stable order; beats maps each object to the one it defeats.
var (
	choices = []Choice{
		{Name: "rock", Description: "sedimentary, igneous, or metamorphic"},
		{Name: "paper", Description: "a smooth sheet of pressed wood pulp"},
		{Name: "scissors", Description: "a pair of pivoted blades"},
	}

	beats = map[string]string{
		"rock":     "scissors",
		"scissors": "paper",
		"paper":    "rock",
	}
)

// service implements the Service interface
type service struct {
	repo   challengeRepo.Repository
	uuider uuid.UUID
	clock  clock.Clock
	random *rand.Rand
}

// New creates a new challenge service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repo == nil {
		return nil, ErrNilRepo
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		repo:   cfg.Repo,
		uuider: cfg.UUID,
		clock:  cfg.Clock,
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// Choices returns the playable objects in stable order.
func (s *service) Choices() []Choice {
	out := make([]Choice, len(choices))
	copy(out, choices)
	return out
}

// ShuffledChoices returns the playable objects in random order.
func (s *service) ShuffledChoices() []Choice {
	out := s.Choices()
	s.random.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func validChoice(name string) bool {
	_, ok := beats[name]
	return ok
}

// Create opens a new challenge.
func (s *service) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.ChallengerID == "" {
		return nil, errors.New("input and challenger ID cannot be empty")
	}

	if !validChoice(input.ObjectName) {
		return nil, ErrUnknownChoice
	}

	c := &models.Challenge{
		ID:             s.uuider.NewUUID(),
		ChallengerID:   input.ChallengerID,
		ChallengerName: input.ChallengerName,
		ObjectName:     input.ObjectName,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: c,
	}); err != nil {
		return nil, err
	}

	return &CreateOutput{ChallengeID: c.ID}, nil
}

// Resolve settles a challenge and deletes it. A second resolution of the
// same challenge fails with ErrChallengeNotFound.
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.ChallengeID == "" || input.ResponderID == "" {
		return nil, errors.New("input, challenge ID and responder ID cannot be empty")
	}

	if !validChoice(input.ObjectName) {
		return nil, ErrUnknownChoice
	}

	c, err := s.repo.GetChallenge(ctx, &challengeRepo.GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		if errors.Is(err, challengeRepo.ErrChallengeNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}

	// single-use: consume the entry before reporting the result
	if err := s.repo.DeleteChallenge(ctx, &challengeRepo.DeleteChallengeInput{
		ChallengeID: input.ChallengeID,
	}); err != nil {
		return nil, err
	}

	return &ResolveOutput{
		Result: result(c.ChallengerName, c.ObjectName, input.ResponderName, input.ObjectName),
	}, nil
}

// result produces the outcome line for two choices.
func result(challengerName, challengerObject, responderName, responderObject string) string {
	switch {
	case challengerObject == responderObject:
		return fmt.Sprintf("%s and %s draw with %s!", challengerName, responderName, challengerObject)
	case beats[challengerObject] == responderObject:
		return fmt.Sprintf("%s's %s beats %s's %s!", challengerName, challengerObject, responderName, responderObject)
	default:
		return fmt.Sprintf("%s's %s beats %s's %s!", responderName, responderObject, challengerName, challengerObject)
	}
}
