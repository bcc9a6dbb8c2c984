package icons

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/castbot/castbot/internal/services/icons Service

// Service defines the interface for player icon management.
type Service interface {
	// CreateIcons uploads guild emojis from the given members' avatars
	// and stores the emoji handles on their player records.
	CreateIcons(ctx context.Context, input *CreateIconsInput) (*CreateIconsOutput, error)

	// RemoveTribeIcons reclaims the icons of players who belonged only
	// to the given (just-cleared) tribe role. Their records keep age and
	// timezone data; only the emoji fields are cleared.
	RemoveTribeIcons(ctx context.Context, input *RemoveTribeIconsInput) (*RemoveTribeIconsOutput, error)
}
