package playerstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/castbot/castbot/internal/models"
)

// stubTribeLoader hands back a fixed tribe config for seeding.
type stubTribeLoader struct {
	tribes models.TribeConfig
}

func (l *stubTribeLoader) LoadTribes(ctx context.Context) (*models.TribeConfig, error) {
	tribes := l.tribes
	return &tribes, nil
}

type FileRepositoryTestSuite struct {
	suite.Suite
	path string
	repo Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "playerData.json")

	role := "role-tribe-1"
	repo, err := NewFile(&Config{
		Path: s.path,
		Tribes: &stubTribeLoader{
			tribes: models.TribeConfig{Tribe1: &role},
		},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestLoadSeedsOnFirstAccess() {
	doc, err := s.repo.Load(context.Background())
	s.Require().NoError(err)

	s.Empty(doc.Players)
	s.Require().NotNil(doc.Config.Tribes.Tribe1)
	s.Equal("role-tribe-1", *doc.Config.Tribes.Tribe1)

	// The seeded document must land on disk, not just in memory.
	_, err = os.Stat(s.path)
	s.NoError(err)
}

func (s *FileRepositoryTestSuite) TestUpdatePlayerMergesPartially() {
	ctx := context.Background()

	age := "27"
	_, err := s.repo.UpdatePlayer(ctx, &UpdatePlayerInput{
		PlayerID: "player-1",
		Patch:    &models.PlayerPatch{Age: &age},
	})
	s.Require().NoError(err)

	// A later patch that only carries the emoji must leave the age alone.
	emoji := models.Emoji{Name: "player-1", ID: "emoji-1"}
	rec, err := s.repo.UpdatePlayer(ctx, &UpdatePlayerInput{
		PlayerID: "player-1",
		Patch:    &models.PlayerPatch{Emoji: &emoji},
	})
	s.Require().NoError(err)

	s.Equal("27", rec.Age)
	s.Equal("emoji-1", rec.EmojiID)
	s.Equal("<:player-1:emoji-1>", rec.EmojiCode)
}

func (s *FileRepositoryTestSuite) TestGetPlayerAbsentReturnsNil() {
	rec, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "nobody",
	})
	s.Require().NoError(err)
	s.Nil(rec)
}

func (s *FileRepositoryTestSuite) TestMutatePersistsChanges() {
	ctx := context.Background()

	err := s.repo.Mutate(ctx, &MutateInput{
		Apply: func(doc *models.StoreDocument) error {
			doc.Players["player-1"] = &models.PlayerRecord{Member: "Alice"}
			return nil
		},
	})
	s.Require().NoError(err)

	rec, err := s.repo.GetPlayer(ctx, &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Require().NotNil(rec)
	s.Equal("Alice", rec.Member)
}

func (s *FileRepositoryTestSuite) TestClearPlayerEmojiKeepsOtherFields() {
	ctx := context.Background()

	age := "30"
	emoji := models.Emoji{Name: "player-1", ID: "emoji-1"}
	_, err := s.repo.UpdatePlayer(ctx, &UpdatePlayerInput{
		PlayerID: "player-1",
		Patch:    &models.PlayerPatch{Age: &age, Emoji: &emoji},
	})
	s.Require().NoError(err)

	err = s.repo.ClearPlayerEmoji(ctx, &ClearPlayerEmojiInput{PlayerID: "player-1"})
	s.Require().NoError(err)

	rec, err := s.repo.GetPlayer(ctx, &GetPlayerInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("30", rec.Age)
	s.Empty(rec.EmojiID)
	s.Empty(rec.EmojiName)
	s.Empty(rec.EmojiCode)
}

func (s *FileRepositoryTestSuite) TestClearPlayerEmojiAbsentIsNoOp() {
	err := s.repo.ClearPlayerEmoji(context.Background(), &ClearPlayerEmojiInput{
		PlayerID: "nobody",
	})
	s.NoError(err)
}

func (s *FileRepositoryTestSuite) TestLoadMalformedDocumentFails() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o644))

	_, err := s.repo.Load(context.Background())
	s.Require().Error(err)
	s.ErrorIs(err, ErrStorage)
}
