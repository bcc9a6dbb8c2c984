package roster

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/castbot/castbot/internal/services/roster Service

// Service defines the interface for roster aggregation.
type Service interface {
	// Refresh cross-references a guild snapshot with the tribe and
	// timezone configuration and persists the derived attributes of
	// every tribe member into the player store, in one batched write.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
}
