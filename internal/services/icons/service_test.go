package icons

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/castbot/castbot/internal/models"
	"github.com/castbot/castbot/internal/platform"
	platformmocks "github.com/castbot/castbot/internal/platform/mocks"
	"github.com/castbot/castbot/internal/repositories/playerstore"
	storemocks "github.com/castbot/castbot/internal/repositories/playerstore/mocks"
)

type IconsServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	platform *platformmocks.MockClient
	store    *storemocks.MockRepository
	svc      Service
}

func (s *IconsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.platform = platformmocks.NewMockClient(s.ctrl)
	s.store = storemocks.NewMockRepository(s.ctrl)

	svc, err := New(&Config{
		Platform: s.platform,
		Store:    s.store,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *IconsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIconsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IconsServiceTestSuite))
}

func (s *IconsServiceTestSuite) TestCreateIconsForNewPlayer() {
	s.platform.EXPECT().MemberAvatarURL(gomock.Any(), &platform.MemberAvatarURLInput{
		GuildID: "guild-1",
		UserID:  "user-1",
	}).Return(&platform.MemberAvatarURLOutput{
		URL:         "https://cdn.example/avatar.png",
		DisplayName: "Alice",
	}, nil)

	s.store.EXPECT().GetPlayer(gomock.Any(), &playerstore.GetPlayerInput{
		PlayerID: "user-1",
	}).Return(nil, nil)

	s.platform.EXPECT().CreateEmoji(gomock.Any(), &platform.CreateEmojiInput{
		GuildID:  "guild-1",
		Name:     "user-1",
		ImageURL: "https://cdn.example/avatar.png",
	}).Return(&platform.CreateEmojiOutput{
		Emoji: models.Emoji{Name: "user-1", ID: "emoji-1"},
	}, nil)

	s.store.EXPECT().UpdatePlayer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *playerstore.UpdatePlayerInput) (*models.PlayerRecord, error) {
			s.Equal("user-1", input.PlayerID)
			s.Require().NotNil(input.Patch.Emoji)
			s.Equal("emoji-1", input.Patch.Emoji.ID)
			rec := &models.PlayerRecord{}
			rec.Apply(input.Patch)
			return rec, nil
		})

	out, err := s.svc.CreateIcons(context.Background(), &CreateIconsInput{
		GuildID: "guild-1",
		UserIDs: []string{"user-1"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Icons, 1)
	s.Equal("Alice", out.Icons[0].DisplayName)
	s.Equal("<:user-1:emoji-1>", out.Icons[0].Emoji.Token())
}

func (s *IconsServiceTestSuite) TestCreateIconsReplacesStaleEmoji() {
	s.platform.EXPECT().MemberAvatarURL(gomock.Any(), gomock.Any()).Return(&platform.MemberAvatarURLOutput{
		URL:         "https://cdn.example/avatar.png",
		DisplayName: "Alice",
	}, nil)

	s.store.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).Return(&models.PlayerRecord{
		EmojiName: "user-1",
		EmojiID:   "emoji-old",
	}, nil)

	// the stale emoji goes first, then the fresh upload
	s.platform.EXPECT().DeleteEmoji(gomock.Any(), &platform.DeleteEmojiInput{
		GuildID: "guild-1",
		EmojiID: "emoji-old",
	}).Return(nil)

	s.platform.EXPECT().CreateEmoji(gomock.Any(), gomock.Any()).Return(&platform.CreateEmojiOutput{
		Emoji: models.Emoji{Name: "user-1", ID: "emoji-new"},
	}, nil)

	s.store.EXPECT().UpdatePlayer(gomock.Any(), gomock.Any()).Return(&models.PlayerRecord{}, nil)

	out, err := s.svc.CreateIcons(context.Background(), &CreateIconsInput{
		GuildID: "guild-1",
		UserIDs: []string{"user-1"},
	})
	s.Require().NoError(err)
	s.Equal("emoji-new", out.Icons[0].Emoji.ID)
}

func (s *IconsServiceTestSuite) TestCreateIconsEmojiLimitAborts() {
	s.platform.EXPECT().MemberAvatarURL(gomock.Any(), gomock.Any()).Return(&platform.MemberAvatarURLOutput{
		URL: "https://cdn.example/avatar.png",
	}, nil)
	s.store.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).Return(nil, nil)

	limitErr := &platform.ResourceLimitError{Resource: "emoji", Limit: 50}
	s.platform.EXPECT().CreateEmoji(gomock.Any(), gomock.Any()).Return(nil, limitErr)

	_, err := s.svc.CreateIcons(context.Background(), &CreateIconsInput{
		GuildID: "guild-1",
		UserIDs: []string{"user-1"},
	})
	s.Require().Error(err)

	var gotLimit *platform.ResourceLimitError
	s.Require().True(errors.As(err, &gotLimit))
	s.Equal(50, gotLimit.Limit)
}

func (s *IconsServiceTestSuite) TestRemoveTribeIconsClearsOnlyOrphanedPlayers() {
	snapshot := &models.GuildSnapshot{
		GuildID: "guild-1",
		Members: []*models.GuildMember{
			// only in the cleared tribe: icon reclaimed
			{ID: "user-1", DisplayName: "alice", RoleIDs: []string{"role-cleared"}},
			// also in a surviving tribe: icon kept
			{ID: "user-2", DisplayName: "bob", RoleIDs: []string{"role-cleared", "role-kept"}},
			// not in the cleared tribe at all
			{ID: "user-3", DisplayName: "carol", RoleIDs: []string{"role-kept"}},
		},
	}

	s.store.EXPECT().GetPlayer(gomock.Any(), &playerstore.GetPlayerInput{
		PlayerID: "user-1",
	}).Return(&models.PlayerRecord{Age: "27", EmojiID: "emoji-1"}, nil)

	s.platform.EXPECT().DeleteEmoji(gomock.Any(), &platform.DeleteEmojiInput{
		GuildID: "guild-1",
		EmojiID: "emoji-1",
	}).Return(nil)

	s.store.EXPECT().ClearPlayerEmoji(gomock.Any(), &playerstore.ClearPlayerEmojiInput{
		PlayerID: "user-1",
	}).Return(nil)

	out, err := s.svc.RemoveTribeIcons(context.Background(), &RemoveTribeIconsInput{
		Snapshot:              snapshot,
		RoleID:                "role-cleared",
		RemainingTribeRoleIDs: []string{"role-kept"},
	})
	s.Require().NoError(err)
	s.Equal(1, out.Removed)
}

func (s *IconsServiceTestSuite) TestRemoveTribeIconsSkipsPlayersWithoutEmoji() {
	snapshot := &models.GuildSnapshot{
		GuildID: "guild-1",
		Members: []*models.GuildMember{
			{ID: "user-1", DisplayName: "alice", RoleIDs: []string{"role-cleared"}},
		},
	}

	s.store.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).Return(&models.PlayerRecord{Age: "27"}, nil)

	out, err := s.svc.RemoveTribeIcons(context.Background(), &RemoveTribeIconsInput{
		Snapshot: snapshot,
		RoleID:   "role-cleared",
	})
	s.Require().NoError(err)
	s.Equal(0, out.Removed)
}
