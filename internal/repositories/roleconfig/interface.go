package roleconfig

import (
	"context"

	"github.com/castbot/castbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/castbot/castbot/internal/repositories/roleconfig Repository

// Repository defines the interface for admin-editable role configuration:
// the 4-slot tribe config and the pronoun role list. Timezone roles are
// fixed boot-time configuration and live outside this repository.
type Repository interface {
	// LoadTribes reads the persisted tribe config, seeding an empty one
	// on first access.
	LoadTribes(ctx context.Context) (*models.TribeConfig, error)

	// SetTribeSlot binds a role (and optional emoji) to one slot. The
	// role ID is not validated against the guild; a role that does not
	// exist simply matches no members at aggregation time.
	SetTribeSlot(ctx context.Context, input *SetTribeSlotInput) error

	// ClearTribeSlot sets one slot's role and emoji to null.
	ClearTribeSlot(ctx context.Context, input *ClearTribeSlotInput) error

	// ClearAllTribes deactivates every slot.
	ClearAllTribes(ctx context.Context) error

	// ListPronounRoles returns the pronoun role IDs in stable list order.
	ListPronounRoles(ctx context.Context) ([]string, error)

	// AddPronounRoles adds role IDs to the pronoun list, idempotently.
	AddPronounRoles(ctx context.Context, input *AddPronounRolesInput) (*AddPronounRolesOutput, error)

	// RemovePronounRoles removes role IDs from the pronoun list,
	// idempotently.
	RemovePronounRoles(ctx context.Context, input *RemovePronounRolesInput) (*RemovePronounRolesOutput, error)
}
