package roster

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/castbot/castbot/internal/common/clock"
	"github.com/castbot/castbot/internal/config"
	"github.com/castbot/castbot/internal/models"
	"github.com/castbot/castbot/internal/repositories/playerstore"
	"github.com/castbot/castbot/internal/repositories/roleconfig"
)

// Define errors
var (
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNilStore  = errors.New("player store cannot be nil")
	ErrNilTribes = errors.New("tribe config repository cannot be nil")
	ErrNilRoles  = errors.New("role set cannot be nil")
	ErrNilClock  = errors.New("clock cannot be nil")
)

// utcTimeFormat matches the timestamp strings older store documents hold.
const utcTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// service implements the Service interface
type service struct {
	store  playerstore.Repository
	tribes roleconfig.Repository
	roles  *config.RoleSet
	clock  clock.Clock
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}
	if cfg.Tribes == nil {
		return nil, ErrNilTribes
	}
	if cfg.Roles == nil {
		return nil, ErrNilRoles
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		store:  cfg.Store,
		tribes: cfg.Tribes,
		roles:  cfg.Roles,
		clock:  cfg.Clock,
	}, nil
}

// Refresh runs one aggregation pass over a guild snapshot.
//
// Members holding no active tribe role are skipped entirely; their
// pre-existing records stay untouched. Records are never pruned here,
// only added or refreshed. The whole document is written once per pass.
func (s *service) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.New("input and snapshot cannot be nil")
	}

	tribes, err := s.tribes.LoadTribes(ctx)
	if err != nil {
		return nil, err
	}

	activeTribeRoles := tribes.ActiveRoleIDs()
	now := s.clock.Now().UTC()
	out := &RefreshOutput{}

	err = s.store.Mutate(ctx, &playerstore.MutateInput{
		Apply: func(doc *models.StoreDocument) error {
			// keep the store's tribe sub-document in step with tribes.json
			doc.Config.Tribes = *tribes

			for _, member := range input.Snapshot.Members {
				if !member.HasAnyRole(activeTribeRoles) {
					continue
				}

				if err := s.refreshMember(doc, input.Snapshot, member, now); err != nil {
					log.Printf("Skipping member %s during roster refresh: %v", member.ID, err)
					continue
				}

				out.Updated++
			}

			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// refreshMember overwrites the cached display name and, when the member
// holds a configured timezone role, the timezone snapshot fields. The
// first timezone role in configured list order wins. A member with no
// timezone role keeps whatever timezone fields they already had.
func (s *service) refreshMember(doc *models.StoreDocument, snapshot *models.GuildSnapshot, member *models.GuildMember, now time.Time) error {
	if member.ID == "" {
		return errors.New("member has no ID")
	}

	rec, ok := doc.Players[member.ID]
	if !ok {
		rec = &models.PlayerRecord{}
		doc.Players[member.ID] = rec
	}

	rec.Member = member.DisplayName

	for _, roleID := range s.roles.TimezoneRoleIDs() {
		if !member.HasRole(roleID) {
			continue
		}

		offset, ok := s.roles.Offset(roleID)
		if !ok {
			// configured list and offsets out of step; treat as no
			// timezone rather than failing the member
			log.Printf("Timezone role %s has no offset configured", roleID)
			break
		}

		rec.TimezoneRoleID = roleID
		rec.Timezone, _ = snapshot.RoleName(roleID)
		rec.Offset = offset
		rec.UTCTime = now.Format(utcTimeFormat)
		rec.MemberTime = now.Add(time.Duration(offset) * time.Hour).Format(utcTimeFormat)
		break
	}

	return nil
}
