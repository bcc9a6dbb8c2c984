package icons

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/castbot/castbot/internal/models"
	"github.com/castbot/castbot/internal/platform"
	"github.com/castbot/castbot/internal/repositories/playerstore"
)

// Define errors
var (
	ErrNilConfig   = errors.New("config cannot be nil")
	ErrNilPlatform = errors.New("platform client cannot be nil")
	ErrNilStore    = errors.New("player store cannot be nil")
)

// service implements the Service interface
type service struct {
	platform platform.Client
	store    playerstore.Repository
}

// New creates a new icons service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	return &service{
		platform: cfg.Platform,
		store:    cfg.Store,
	}, nil
}

// CreateIcons uploads a guild emoji from each member's avatar and stores
// the structured handle on their record. The emoji is named after the
// user ID so a player can hold at most one icon; an existing icon is
// deleted before the new one is stored.
func (s *service) CreateIcons(ctx context.Context, input *CreateIconsInput) (*CreateIconsOutput, error) {
	if input == nil || input.GuildID == "" || len(input.UserIDs) == 0 {
		return nil, errors.New("input, guild ID and user IDs cannot be empty")
	}

	out := &CreateIconsOutput{}
	for _, userID := range input.UserIDs {
		avatar, err := s.platform.MemberAvatarURL(ctx, &platform.MemberAvatarURLInput{
			GuildID: input.GuildID,
			UserID:  userID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve avatar for %s: %w", userID, err)
		}

		if prev, err := s.store.GetPlayer(ctx, &playerstore.GetPlayerInput{
			PlayerID: userID,
		}); err == nil && prev != nil && prev.EmojiID != "" {
			if err := s.platform.DeleteEmoji(ctx, &platform.DeleteEmojiInput{
				GuildID: input.GuildID,
				EmojiID: prev.EmojiID,
			}); err != nil {
				log.Printf("Failed to delete stale icon emoji %s for %s: %v", prev.EmojiID, userID, err)
			}
		}

		created, err := s.platform.CreateEmoji(ctx, &platform.CreateEmojiInput{
			GuildID:  input.GuildID,
			Name:     userID,
			ImageURL: avatar.URL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create icon emoji for %s: %w", userID, err)
		}

		emoji := created.Emoji
		if _, err := s.store.UpdatePlayer(ctx, &playerstore.UpdatePlayerInput{
			PlayerID: userID,
			Patch:    &models.PlayerPatch{Emoji: &emoji},
		}); err != nil {
			return nil, err
		}

		out.Icons = append(out.Icons, &Icon{
			UserID:      userID,
			DisplayName: avatar.DisplayName,
			AvatarURL:   avatar.URL,
			Emoji:       emoji,
		})
	}

	return out, nil
}

// RemoveTribeIcons reclaims icon emojis from players whose only active
// tribe role was the cleared one. Per-player failures are logged and
// skipped; the pass never aborts part-way for one player.
func (s *service) RemoveTribeIcons(ctx context.Context, input *RemoveTribeIconsInput) (*RemoveTribeIconsOutput, error) {
	if input == nil || input.Snapshot == nil || input.RoleID == "" {
		return nil, errors.New("input, snapshot and role ID cannot be empty")
	}

	out := &RemoveTribeIconsOutput{}
	for _, member := range input.Snapshot.Members {
		if !member.HasRole(input.RoleID) || member.HasAnyRole(input.RemainingTribeRoleIDs) {
			continue
		}

		rec, err := s.store.GetPlayer(ctx, &playerstore.GetPlayerInput{
			PlayerID: member.ID,
		})
		if err != nil {
			log.Printf("Failed to load player %s while clearing tribe icons: %v", member.ID, err)
			continue
		}
		if rec == nil || rec.EmojiID == "" {
			continue
		}

		if err := s.platform.DeleteEmoji(ctx, &platform.DeleteEmojiInput{
			GuildID: input.Snapshot.GuildID,
			EmojiID: rec.EmojiID,
		}); err != nil {
			log.Printf("Failed to delete icon emoji %s for %s: %v", rec.EmojiID, member.ID, err)
		}

		if err := s.store.ClearPlayerEmoji(ctx, &playerstore.ClearPlayerEmojiInput{
			PlayerID: member.ID,
		}); err != nil {
			log.Printf("Failed to clear emoji fields for %s: %v", member.ID, err)
			continue
		}

		out.Removed++
	}

	return out, nil
}
