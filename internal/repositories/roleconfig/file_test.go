package roleconfig

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dataDir string
	repo    Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dataDir = s.T().TempDir()

	repo, err := NewFile(&Config{
		DataDir:          s.dataDir,
		SeedPronounRoles: []string{"role-she", "role-they"},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestLoadTribesSeedsEmptyConfig() {
	tribes, err := s.repo.LoadTribes(context.Background())
	s.Require().NoError(err)
	s.Empty(tribes.ActiveRoleIDs())

	_, err = os.Stat(filepath.Join(s.dataDir, "tribes.json"))
	s.NoError(err)
}

func (s *FileRepositoryTestSuite) TestSetTribeSlotRoundTrips() {
	ctx := context.Background()

	err := s.repo.SetTribeSlot(ctx, &SetTribeSlotInput{
		Slot:   2,
		RoleID: "role123",
		Emoji:  "🔥",
	})
	s.Require().NoError(err)

	tribes, err := s.repo.LoadTribes(ctx)
	s.Require().NoError(err)

	slot := tribes.Slot(2)
	s.Equal("role123", slot.RoleID)
	s.Equal("🔥", slot.Emoji)
	s.False(tribes.Slot(1).Active())

	// The persisted file keeps the flat nullable layout.
	data, err := os.ReadFile(filepath.Join(s.dataDir, "tribes.json"))
	s.Require().NoError(err)

	var raw map[string]any
	s.Require().NoError(json.Unmarshal(data, &raw))
	s.Equal("role123", raw["tribe2"])
	s.Nil(raw["tribe1"])
}

func (s *FileRepositoryTestSuite) TestSetTribeSlotRejectsBadSlot() {
	err := s.repo.SetTribeSlot(context.Background(), &SetTribeSlotInput{
		Slot:   5,
		RoleID: "role123",
	})
	s.Error(err)
}

func (s *FileRepositoryTestSuite) TestClearTribeSlot() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetTribeSlot(ctx, &SetTribeSlotInput{Slot: 1, RoleID: "role-a"}))
	s.Require().NoError(s.repo.SetTribeSlot(ctx, &SetTribeSlotInput{Slot: 3, RoleID: "role-b"}))

	s.Require().NoError(s.repo.ClearTribeSlot(ctx, &ClearTribeSlotInput{Slot: 1}))

	tribes, err := s.repo.LoadTribes(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"role-b"}, tribes.ActiveRoleIDs())
}

func (s *FileRepositoryTestSuite) TestClearAllTribes() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SetTribeSlot(ctx, &SetTribeSlotInput{Slot: 1, RoleID: "role-a"}))
	s.Require().NoError(s.repo.SetTribeSlot(ctx, &SetTribeSlotInput{Slot: 4, RoleID: "role-b"}))

	s.Require().NoError(s.repo.ClearAllTribes(ctx))

	tribes, err := s.repo.LoadTribes(ctx)
	s.Require().NoError(err)
	s.Empty(tribes.ActiveRoleIDs())
}

func (s *FileRepositoryTestSuite) TestListPronounRolesSeedsFromConfig() {
	roles, err := s.repo.ListPronounRoles(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"role-she", "role-they"}, roles)
}

func (s *FileRepositoryTestSuite) TestAddPronounRolesIsIdempotent() {
	ctx := context.Background()

	out, err := s.repo.AddPronounRoles(ctx, &AddPronounRolesInput{
		RoleIDs: []string{"role-he", "role-she"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"role-he"}, out.Added)
	s.Equal([]string{"role-she"}, out.AlreadyPresent)

	roles, err := s.repo.ListPronounRoles(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"role-she", "role-they", "role-he"}, roles)
}

func (s *FileRepositoryTestSuite) TestRemovePronounRoles() {
	ctx := context.Background()

	out, err := s.repo.RemovePronounRoles(ctx, &RemovePronounRolesInput{
		RoleIDs: []string{"role-they", "role-missing"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"role-they"}, out.Removed)
	s.Equal([]string{"role-missing"}, out.NotFound)

	roles, err := s.repo.ListPronounRoles(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"role-she"}, roles)
}

func (s *FileRepositoryTestSuite) TestMalformedTribesFileFails() {
	path := filepath.Join(s.dataDir, "tribes.json")
	s.Require().NoError(os.WriteFile(path, []byte("{oops"), 0o644))

	_, err := s.repo.LoadTribes(context.Background())
	s.Require().Error(err)
	s.ErrorIs(err, ErrConfig)
}
