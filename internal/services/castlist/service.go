package castlist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

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

const (
	documentTitle = "Dynamic Castlist"
	documentColor = 0x7ED321

	// spacer renders as a blank field between tribe sections
	spacer = "​"

	placeholderPronouns = "No pronoun roles"
	placeholderTimezone = "No timezone roles"
	placeholderAge      = "No age set"

	// maxFieldsPerDocument is the platform's embed field cap
	maxFieldsPerDocument = 25
)

// service implements the Service interface
type service struct {
	store  playerstore.Repository
	tribes roleconfig.Repository
	roles  *config.RoleSet
	clock  clock.Clock
}

// New creates a new castlist service
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

// section is one tribe's header plus its member rows.
type section struct {
	header Field
	rows   []Field
}

// Build renders the castlist for a guild snapshot. Tribe membership is
// always computed from the live snapshot; only admin-set fields (age,
// emoji) come from the player store.
func (s *service) Build(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.New("input and snapshot cannot be nil")
	}

	tribes, err := s.tribes.LoadTribes(ctx)
	if err != nil {
		return nil, err
	}

	pronounRoleIDs, err := s.tribes.ListPronounRoles(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	snapshot := input.Snapshot

	var sections []section
	for n := 1; n <= models.TribeSlotCount; n++ {
		slot := tribes.Slot(n)
		if !slot.Active() {
			continue
		}

		roleName, ok := snapshot.RoleName(slot.RoleID)
		if !ok {
			log.Printf("Tribe slot %d role %s no longer exists, skipping", n, slot.RoleID)
			continue
		}

		var members []*models.GuildMember
		for _, m := range snapshot.Members {
			if m.HasRole(slot.RoleID) {
				members = append(members, m)
			}
		}

		sort.SliceStable(members, func(i, j int) bool {
			return strings.ToLower(members[i].DisplayName) < strings.ToLower(members[j].DisplayName)
		})

		header := roleName
		if slot.Emoji != "" {
			header = fmt.Sprintf("%s %s %s", slot.Emoji, roleName, slot.Emoji)
		}

		sec := section{header: Field{Name: header, Value: spacer, Inline: false}}
		for _, m := range members {
			row, err := s.memberRow(doc, snapshot, m, pronounRoleIDs, now)
			if err != nil {
				log.Printf("Skipping member %s in castlist: %v", m.ID, err)
				continue
			}
			sec.rows = append(sec.rows, row)
		}

		sections = append(sections, sec)
	}

	documents := make([]*Document, 0, 1)
	for i, fields := range paginate(sections) {
		title := documentTitle
		if i > 0 {
			title = fmt.Sprintf("%s (page %d)", documentTitle, i+1)
		}
		documents = append(documents, &Document{
			Title:         title,
			AuthorName:    snapshot.GuildName,
			AuthorIconURL: snapshot.GuildIconURL,
			Color:         documentColor,
			Fields:        fields,
		})
	}

	return &BuildOutput{Documents: documents}, nil
}

// memberRow derives one member's render row.
func (s *service) memberRow(doc *models.StoreDocument, snapshot *models.GuildSnapshot, member *models.GuildMember, pronounRoleIDs []string, now time.Time) (Field, error) {
	if member.ID == "" || member.DisplayName == "" {
		return Field{}, errors.New("member has no ID or display name")
	}

	pronouns := s.joinRoleNames(member, pronounRoleIDs, snapshot)
	if pronouns == "" {
		pronouns = placeholderPronouns
	}

	timezone := s.joinRoleNames(member, s.roles.TimezoneRoleIDs(), snapshot)
	if timezone == "" {
		timezone = placeholderTimezone
	}

	// Local time is recomputed live; the store's cached memberTime is
	// deliberately not reused. No timezone role means plain UTC.
	offset := 0
	for _, roleID := range s.roles.TimezoneRoleIDs() {
		if member.HasRole(roleID) {
			if o, ok := s.roles.Offset(roleID); ok {
				offset = o
			}
			break
		}
	}
	localTime := formatClock(now.Add(time.Duration(offset) * time.Hour))

	rec := doc.Players[member.ID]

	age := placeholderAge
	if rec != nil && rec.Age != "" {
		age = rec.Age
	}

	name := capitalize(member.DisplayName)
	if rec != nil {
		if emoji := rec.Emoji(); !emoji.IsZero() {
			name = emoji.Token() + " " + name
		}
	}

	value := fmt.Sprintf("> * %s\n> * %s\n> * %s\n> * %s", age, pronouns, timezone, localTime)
	return Field{Name: name, Value: value, Inline: true}, nil
}

// joinRoleNames joins the names of every configured role the member
// holds, in configured list order.
func (s *service) joinRoleNames(member *models.GuildMember, roleIDs []string, snapshot *models.GuildSnapshot) string {
	var names []string
	for _, roleID := range roleIDs {
		if !member.HasRole(roleID) {
			continue
		}
		if name, ok := snapshot.RoleName(roleID); ok && name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// formatClock renders a 12-hour wall clock with the decorative wrapper.
func formatClock(t time.Time) string {
	hours := t.Hour() % 12
	if hours == 0 {
		hours = 12
	}
	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("`🕐 %d:%02d %s 🕐`", hours, t.Minute(), ampm)
}

// capitalize upper-cases the first rune of a display name.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// paginate packs tribe sections into pages of at most 25 fields. A
// spacer separates sections sharing a page; a section too large for one
// page continues onto the next under a repeated header.
func paginate(sections []section) [][]Field {
	var pages [][]Field
	var current []Field

	flush := func() {
		if len(current) > 0 {
			pages = append(pages, current)
			current = nil
		}
	}

	for _, sec := range sections {
		needed := 1 + len(sec.rows)
		if len(current) > 0 && len(current)+1+needed > maxFieldsPerDocument {
			flush()
		}

		if len(current) > 0 {
			current = append(current, Field{Name: spacer, Value: spacer, Inline: false})
		}

		current = append(current, sec.header)
		for _, row := range sec.rows {
			if len(current) == maxFieldsPerDocument {
				flush()
				cont := sec.header
				cont.Name += " (cont.)"
				current = append(current, cont)
			}
			current = append(current, row)
		}
	}
	flush()

	return pages
}
