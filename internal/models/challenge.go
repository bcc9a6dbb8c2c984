package models

import "time"

// Challenge is an open minigame challenge waiting for an opponent. A
// challenge is deleted the first time it resolves; unresolved challenges
// expire out of the store after a TTL.
type Challenge struct {
	// ID is a generated challenge ID.
	ID string

	// ChallengerID is the Discord user ID of the player who issued the
	// challenge.
	ChallengerID string

	// ChallengerName is the challenger's display name at creation time.
	ChallengerName string

	// ObjectName is the challenger's chosen object.
	ObjectName string

	// CreatedAt is when the challenge was issued.
	CreatedAt time.Time
}
