package challenge

import "github.com/castbot/castbot/internal/models"

// SaveChallengeInput contains parameters for saving a challenge.
type SaveChallengeInput struct {
	Challenge *models.Challenge
}

// GetChallengeInput contains parameters for retrieving a challenge.
type GetChallengeInput struct {
	ChallengeID string
}

// DeleteChallengeInput contains parameters for deleting a challenge.
type DeleteChallengeInput struct {
	ChallengeID string
}
