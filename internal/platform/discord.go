package platform

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/castbot/castbot/internal/models"
)

const (
	// memberPageSize is the Discord maximum for one member list request
	memberPageSize = 1000

	// avatarSize passed to avatar URL builders
	avatarSize = "128"

	// maxEmojiImageBytes caps the image download for emoji uploads;
	// Discord rejects anything over 256 KiB anyway
	maxEmojiImageBytes = 512 * 1024

	// errCodeMaxEmojis is Discord's API error code for the per-guild
	// emoji cap (30008)
	errCodeMaxEmojis = 30008
)

// Config holds configuration for the Discord platform client.
type Config struct {
	// Session is the shared discordgo session
	Session *discordgo.Session

	// Optional HTTP client for avatar downloads
	HTTPClient *http.Client
}

// discordClient implements the Client interface on a discordgo session.
type discordClient struct {
	session *discordgo.Session
	http    *http.Client
}

// NewDiscord creates a new Discord-backed platform client.
func NewDiscord(cfg *Config) (*discordClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &discordClient{
		session: cfg.Session,
		http:    httpClient,
	}, nil
}

// mapError translates a discordgo REST error into the local taxonomy.
func mapError(err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Message != nil && restErr.Message.Code == errCodeMaxEmojis {
			return &ResourceLimitError{
				Resource: "emoji",
				Limit:    parseLimit(restErr.Message.Message),
			}
		}
		if restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrPlatform, err)
}

func displayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User == nil {
		return ""
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

// GuildSnapshot fetches the guild, its role table and its full member
// list in one pass. Members are paged through the REST API rather than
// read from gateway state, so the snapshot always reflects current role
// membership.
func (c *discordClient) GuildSnapshot(ctx context.Context, input *GuildSnapshotInput) (*models.GuildSnapshot, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	guild, err := c.session.Guild(input.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	roles, err := c.session.GuildRoles(input.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	roleNames := make(map[string]string, len(roles))
	for _, role := range roles {
		roleNames[role.ID] = role.Name
	}

	snapshot := &models.GuildSnapshot{
		GuildID:      guild.ID,
		GuildName:    guild.Name,
		GuildIconURL: guild.IconURL(avatarSize),
		Roles:        roleNames,
	}

	after := ""
	for {
		page, err := c.session.GuildMembers(input.GuildID, after, memberPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, mapError(err)
		}

		for _, m := range page {
			if m.User == nil {
				continue
			}
			snapshot.Members = append(snapshot.Members, &models.GuildMember{
				ID:          m.User.ID,
				DisplayName: displayName(m),
				RoleIDs:     m.Roles,
			})
			after = m.User.ID
		}

		if len(page) < memberPageSize {
			break
		}
	}

	return snapshot, nil
}

// MemberAvatarURL resolves a member's guild avatar, falling back to their
// account avatar.
func (c *discordClient) MemberAvatarURL(ctx context.Context, input *MemberAvatarURLInput) (*MemberAvatarURLOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	member, err := c.session.GuildMember(input.GuildID, input.UserID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	url := member.AvatarURL(avatarSize)
	if url == "" {
		return nil, fmt.Errorf("%w: member %s has no avatar", ErrNotFound, input.UserID)
	}

	return &MemberAvatarURLOutput{
		URL:         url,
		DisplayName: displayName(member),
	}, nil
}

// fetchImage downloads an image and returns it as a base64 data URI, the
// format Discord's emoji endpoint expects.
func (c *discordClient) fetchImage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPlatform, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPlatform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: avatar fetch returned %s", ErrPlatform, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxEmojiImageBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPlatform, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}

// CreateEmoji uploads an image as a guild emoji.
func (c *discordClient) CreateEmoji(ctx context.Context, input *CreateEmojiInput) (*CreateEmojiOutput, error) {
	if input == nil || input.GuildID == "" || input.Name == "" || input.ImageURL == "" {
		return nil, errors.New("input, guild ID, name and image URL cannot be empty")
	}

	image, err := c.fetchImage(ctx, input.ImageURL)
	if err != nil {
		return nil, err
	}

	emoji, err := c.session.GuildEmojiCreate(input.GuildID, &discordgo.EmojiParams{
		Name:  input.Name,
		Image: image,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	return &CreateEmojiOutput{
		Emoji: models.Emoji{Name: emoji.Name, ID: emoji.ID},
	}, nil
}

// DeleteEmoji removes a guild emoji by ID.
func (c *discordClient) DeleteEmoji(ctx context.Context, input *DeleteEmojiInput) error {
	if input == nil || input.GuildID == "" || input.EmojiID == "" {
		return errors.New("input, guild ID and emoji ID cannot be empty")
	}

	if err := c.session.GuildEmojiDelete(input.GuildID, input.EmojiID, discordgo.WithContext(ctx)); err != nil {
		return mapError(err)
	}

	return nil
}
