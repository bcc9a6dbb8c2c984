package castlist

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmocks "github.com/castbot/castbot/internal/common/clock/mocks"
	"github.com/castbot/castbot/internal/config"
	"github.com/castbot/castbot/internal/models"
	storemocks "github.com/castbot/castbot/internal/repositories/playerstore/mocks"
	tribemocks "github.com/castbot/castbot/internal/repositories/roleconfig/mocks"
)

const (
	tribeRole    = "role-tribe"
	secondRole   = "role-tribe-2"
	pstRole      = "role-pst"
	sheHerRole   = "role-she-her"
	theyThemRole = "role-they-them"

	zwsp = "​"
)

type CastlistServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *storemocks.MockRepository
	tribes  *tribemocks.MockRepository
	clock   *clockmocks.MockClock
	svc     Service
	doc     *models.StoreDocument
	testNow time.Time
}

func (s *CastlistServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = storemocks.NewMockRepository(s.ctrl)
	s.tribes = tribemocks.NewMockRepository(s.ctrl)
	s.clock = clockmocks.NewMockClock(s.ctrl)

	svc, err := New(&Config{
		Store:  s.store,
		Tribes: s.tribes,
		Roles: &config.RoleSet{
			TimezoneRoles: []config.TimezoneRole{
				{RoleID: pstRole, OffsetHours: -8},
			},
		},
		Clock: s.clock,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.doc = models.NewStoreDocument(models.TribeConfig{})
	s.testNow = time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
}

func (s *CastlistServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCastlistServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CastlistServiceTestSuite))
}

func (s *CastlistServiceTestSuite) expectBuild(tribes *models.TribeConfig, pronounRoleIDs []string) {
	s.tribes.EXPECT().LoadTribes(gomock.Any()).Return(tribes, nil)
	s.tribes.EXPECT().ListPronounRoles(gomock.Any()).Return(pronounRoleIDs, nil)
	s.store.EXPECT().Load(gomock.Any()).Return(s.doc, nil)
	s.clock.EXPECT().Now().Return(s.testNow)
}

func (s *CastlistServiceTestSuite) snapshot(members ...*models.GuildMember) *models.GuildSnapshot {
	return &models.GuildSnapshot{
		GuildID:      "guild-1",
		GuildName:    "Test Guild",
		GuildIconURL: "https://cdn.example/icon.png",
		Roles: map[string]string{
			tribeRole:    "Wardogs",
			secondRole:   "Firecats",
			pstRole:      "PST",
			sheHerRole:   "She/Her",
			theyThemRole: "They/Them",
		},
		Members: members,
	}
}

func (s *CastlistServiceTestSuite) TestBuildSortsMembersCaseInsensitively() {
	tribes := &models.TribeConfig{}
	tribes.SetSlot(1, tribeRole, "")
	s.expectBuild(tribes, nil)

	out, err := s.svc.Build(context.Background(), &BuildInput{
		Snapshot: s.snapshot(
			&models.GuildMember{ID: "u1", DisplayName: "carol", RoleIDs: []string{tribeRole}},
			&models.GuildMember{ID: "u2", DisplayName: "Alice", RoleIDs: []string{tribeRole}},
			&models.GuildMember{ID: "u3", DisplayName: "bob", RoleIDs: []string{tribeRole}},
		),
	})
	s.Require().NoError(err)
	s.Require().Len(out.Documents, 1)

	doc := out.Documents[0]
	s.Equal("Dynamic Castlist", doc.Title)
	s.Equal(0x7ED321, doc.Color)
	s.Equal("Test Guild", doc.AuthorName)

	// header plus three member rows, sorted ignoring case
	s.Require().Len(doc.Fields, 4)
	s.Equal("Wardogs", doc.Fields[0].Name)
	s.Equal(zwsp, doc.Fields[0].Value)
	s.Equal("Alice", doc.Fields[1].Name)
	s.Equal("Bob", doc.Fields[2].Name)
	s.Equal("Carol", doc.Fields[3].Name)
	s.True(doc.Fields[1].Inline)
}

func (s *CastlistServiceTestSuite) TestBuildMemberRowContents() {
	tribes := &models.TribeConfig{}
	tribes.SetSlot(1, tribeRole, "🔥")
	s.expectBuild(tribes, []string{sheHerRole, theyThemRole})

	s.doc.Players["u1"] = &models.PlayerRecord{
		Age:       "27",
		EmojiName: "u1",
		EmojiID:   "emoji-1",
		EmojiCode: "<:u1:emoji-1>",
	}

	out, err := s.svc.Build(context.Background(), &BuildInput{
		Snapshot: s.snapshot(
			&models.GuildMember{
				ID:          "u1",
				DisplayName: "alice",
				RoleIDs:     []string{tribeRole, sheHerRole, theyThemRole, pstRole},
			},
		),
	})
	s.Require().NoError(err)
	s.Require().Len(out.Documents, 1)

	fields := out.Documents[0].Fields
	s.Require().Len(fields, 2)
	s.Equal("🔥 Wardogs 🔥", fields[0].Name)

	row := fields[1]
	s.Equal("<:u1:emoji-1> Alice", row.Name)
	// 18:30 UTC at -8 hours is 10:30 AM
	s.Equal("> * 27\n> * She/Her, They/Them\n> * PST\n> * `🕐 10:30 AM 🕐`", row.Value)
}

func (s *CastlistServiceTestSuite) TestBuildUsesPlaceholders() {
	tribes := &models.TribeConfig{}
	tribes.SetSlot(1, tribeRole, "")
	s.expectBuild(tribes, []string{sheHerRole})

	out, err := s.svc.Build(context.Background(), &BuildInput{
		Snapshot: s.snapshot(
			&models.GuildMember{ID: "u1", DisplayName: "alice", RoleIDs: []string{tribeRole}},
		),
	})
	s.Require().NoError(err)

	row := out.Documents[0].Fields[1]
	// no record, no pronoun roles, no timezone roles; clock falls back
	// to plain UTC
	s.Equal("Alice", row.Name)
	s.Equal("> * No age set\n> * No pronoun roles\n> * No timezone roles\n> * `🕐 6:30 PM 🕐`", row.Value)
}

func (s *CastlistServiceTestSuite) TestBuildSeparatesTribesWithSpacer() {
	tribes := &models.TribeConfig{}
	tribes.SetSlot(1, tribeRole, "")
	tribes.SetSlot(3, secondRole, "")
	s.expectBuild(tribes, nil)

	out, err := s.svc.Build(context.Background(), &BuildInput{
		Snapshot: s.snapshot(
			&models.GuildMember{ID: "u1", DisplayName: "alice", RoleIDs: []string{tribeRole}},
			&models.GuildMember{ID: "u2", DisplayName: "bob", RoleIDs: []string{secondRole}},
		),
	})
	s.Require().NoError(err)
	s.Require().Len(out.Documents, 1)

	fields := out.Documents[0].Fields
	s.Require().Len(fields, 5)
	s.Equal("Wardogs", fields[0].Name)
	s.Equal("Alice", fields[1].Name)
	s.Equal(zwsp, fields[2].Name)
	s.Equal("Firecats", fields[3].Name)
	s.Equal("Bob", fields[4].Name)
}

func (s *CastlistServiceTestSuite) TestBuildSkipsVanishedRole() {
	tribes := &models.TribeConfig{}
	tribes.SetSlot(1, "role-deleted", "")
	tribes.SetSlot(2, tribeRole, "")
	s.expectBuild(tribes, nil)

	out, err := s.svc.Build(context.Background(), &BuildInput{
		Snapshot: s.snapshot(
			&models.GuildMember{ID: "u1", DisplayName: "alice", RoleIDs: []string{tribeRole}},
		),
	})
	s.Require().NoError(err)
	s.Require().Len(out.Documents, 1)
	s.Equal("Wardogs", out.Documents[0].Fields[0].Name)
}

func (s *CastlistServiceTestSuite) TestBuildPaginatesLargeTribes() {
	tribes := &models.TribeConfig{}
	tribes.SetSlot(1, tribeRole, "")
	s.expectBuild(tribes, nil)

	var members []*models.GuildMember
	for n := 0; n < 30; n++ {
		members = append(members, &models.GuildMember{
			ID:          fmt.Sprintf("u%02d", n),
			DisplayName: fmt.Sprintf("player%02d", n),
			RoleIDs:     []string{tribeRole},
		})
	}

	out, err := s.svc.Build(context.Background(), &BuildInput{
		Snapshot: s.snapshot(members...),
	})
	s.Require().NoError(err)
	s.Require().Len(out.Documents, 2)

	first, second := out.Documents[0], out.Documents[1]
	s.Equal("Dynamic Castlist", first.Title)
	s.Equal("Dynamic Castlist (page 2)", second.Title)
	s.Len(first.Fields, 25)

	// the continuation page repeats the tribe header
	s.Equal("Wardogs (cont.)", second.Fields[0].Name)
	s.Len(second.Fields, 7)
}

func (s *CastlistServiceTestSuite) TestBuildNoActiveTribes() {
	s.expectBuild(&models.TribeConfig{}, nil)

	out, err := s.svc.Build(context.Background(), &BuildInput{
		Snapshot: s.snapshot(),
	})
	s.Require().NoError(err)
	s.Empty(out.Documents)
}
