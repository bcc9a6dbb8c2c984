package roster

import (
	"github.com/castbot/castbot/internal/common/clock"
	"github.com/castbot/castbot/internal/config"
	"github.com/castbot/castbot/internal/models"
	"github.com/castbot/castbot/internal/repositories/playerstore"
	"github.com/castbot/castbot/internal/repositories/roleconfig"
)

// Config holds the dependencies for the roster service.
type Config struct {
	// Player store
	Store playerstore.Repository

	// Tribe configuration
	Tribes roleconfig.Repository

	// Boot-time timezone role configuration
	Roles *config.RoleSet

	// Clock for timezone snapshots
	Clock clock.Clock
}

// RefreshInput contains parameters for an aggregation pass.
type RefreshInput struct {
	Snapshot *models.GuildSnapshot
}

// RefreshOutput reports the result of an aggregation pass.
type RefreshOutput struct {
	// Updated is the number of member records refreshed.
	Updated int
}
