package castlist

import (
	"github.com/castbot/castbot/internal/common/clock"
	"github.com/castbot/castbot/internal/config"
	"github.com/castbot/castbot/internal/models"
	"github.com/castbot/castbot/internal/repositories/playerstore"
	"github.com/castbot/castbot/internal/repositories/roleconfig"
)

// Config holds the dependencies for the castlist service.
type Config struct {
	// Player store, for admin-set fields (age, emoji)
	Store playerstore.Repository

	// Tribe and pronoun configuration
	Tribes roleconfig.Repository

	// Boot-time timezone role configuration
	Roles *config.RoleSet

	// Clock for live local-time rendering
	Clock clock.Clock
}

// BuildInput contains parameters for building a castlist.
type BuildInput struct {
	Snapshot *models.GuildSnapshot
}

// BuildOutput contains the rendered documents, one per page.
type BuildOutput struct {
	Documents []*Document
}

// Document is one rendered castlist page: an embed-like structure with a
// title, author line and an ordered list of named field sections.
type Document struct {
	Title         string
	AuthorName    string
	AuthorIconURL string
	Color         int
	Fields        []Field
}

// Field is one named section of a document. Inline fields lay out
// side-by-side.
type Field struct {
	Name   string
	Value  string
	Inline bool
}
