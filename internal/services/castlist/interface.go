package castlist

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/castbot/castbot/internal/services/castlist Service

// Service defines the interface for castlist rendering.
type Service interface {
	// Build produces the rendered castlist documents for a guild
	// snapshot: members grouped by tribe in slot order, sorted within
	// each tribe, one paginated document per 25 fields.
	Build(ctx context.Context, input *BuildInput) (*BuildOutput, error)
}
