package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/castbot/castbot/internal/platform"
	"github.com/castbot/castbot/internal/repositories/playerstore"
	"github.com/castbot/castbot/internal/repositories/roleconfig"
	"github.com/castbot/castbot/internal/services/castlist"
	"github.com/castbot/castbot/internal/services/challenge"
	"github.com/castbot/castbot/internal/services/icons"
	"github.com/castbot/castbot/internal/services/roster"
)

// Component custom ID prefixes. The challenge ID rides along after the
// prefix.
const (
	AcceptButtonPrefix = "accept_button_"
	SelectChoicePrefix = "select_choice_"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the shared discordgo session, also used by the
	// platform client
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	Roster    roster.Service
	Castlist  castlist.Service
	Icons     icons.Service
	Challenge challenge.Service

	// Repositories the admin commands edit directly
	Store playerstore.Repository
	Roles roleconfig.Repository

	// Platform client for guild snapshots and avatars
	Platform platform.Client
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.Roster == nil {
		return nil, errors.New("roster service cannot be nil")
	}

	if cfg.Castlist == nil {
		return nil, errors.New("castlist service cannot be nil")
	}

	if cfg.Icons == nil {
		return nil, errors.New("icons service cannot be nil")
	}

	if cfg.Challenge == nil {
		return nil, errors.New("challenge service cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("player store cannot be nil")
	}

	if cfg.Roles == nil {
		return nil, errors.New("role config repository cannot be nil")
	}

	if cfg.Platform == nil {
		return nil, errors.New("platform client cannot be nil")
	}

	session := cfg.Session
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewCastlistCommand(b.config.Platform, b.config.Roster, b.config.Castlist),
		NewSetTribeCommand(b.config.Roles),
		NewClearTribeCommand(b.config.Roles, b.config.Platform, b.config.Icons),
		NewClearTribesCommand(b.config.Roles, b.config.Platform, b.config.Icons),
		NewSetAgeCommand(b.config.Store),
		NewPlayerIconsCommand(b.config.Icons),
		NewPronounsCommand(b.config.Roles),
		NewCheckDataCommand(b.config.Store),
		NewChallengeCommand(b.config.Challenge),
	}

	for _, h := range handlers {
		if err := b.RegisterCommand(h); err != nil {
			return fmt.Errorf("failed to register %s command: %w", h.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and select menus
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks and select menu
// interactions
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, AcceptButtonPrefix):
		return b.handleAcceptButton(s, i, strings.TrimPrefix(customID, AcceptButtonPrefix))
	case strings.HasPrefix(customID, SelectChoicePrefix):
		return b.handleChoiceSelect(s, i, strings.TrimPrefix(customID, SelectChoicePrefix))
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown component: %s", customID))
	}
}

// handleAcceptButton handles a responder accepting a challenge. The
// choices are presented shuffled so the select order gives nothing away.
func (b *Bot) handleAcceptButton(s *discordgo.Session, i *discordgo.InteractionCreate, challengeID string) error {
	var options []discordgo.SelectMenuOption
	for _, choice := range b.config.Challenge.ShuffledChoices() {
		options = append(options, discordgo.SelectMenuOption{
			Label:       choice.Name,
			Value:       choice.Name,
			Description: choice.Description,
		})
	}

	choiceSelect := discordgo.SelectMenu{
		CustomID:    SelectChoicePrefix + challengeID,
		Placeholder: "Select your object",
		Options:     options,
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Make your choice.",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{choiceSelect},
				},
			},
		},
	})
	if err != nil {
		return err
	}

	// Retire the challenge message so nobody else accepts it.
	if i.Message != nil {
		if err := s.ChannelMessageDelete(i.ChannelID, i.Message.ID); err != nil {
			log.Printf("Failed to delete challenge message %s: %v", i.Message.ID, err)
		}
	}

	return nil
}

// handleChoiceSelect handles the responder's object selection and
// announces the result.
func (b *Bot) handleChoiceSelect(s *discordgo.Session, i *discordgo.InteractionCreate, challengeID string) error {
	ctx := context.Background()

	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return RespondWithEphemeralMessage(s, i, "No object selected")
	}

	output, err := b.config.Challenge.Resolve(ctx, &challenge.ResolveInput{
		ChallengeID:   challengeID,
		ResponderID:   i.Member.User.ID,
		ResponderName: memberDisplayName(i.Member),
		ObjectName:    values[0],
	})
	if err != nil {
		if errors.Is(err, challenge.ErrChallengeNotFound) {
			return RespondWithEphemeralMessage(s, i, "This challenge has already been resolved or expired.")
		}
		log.Printf("Error resolving challenge %s: %v", challengeID, err)
		return RespondWithEphemeralMessage(s, i, userFacingError(err))
	}

	// Replace the ephemeral select so it cannot be submitted again, then
	// announce the result to the channel.
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf("You played %s.", values[0]),
			Components: []discordgo.MessageComponent{},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return err
	}

	if _, err := s.ChannelMessageSend(i.ChannelID, output.Result); err != nil {
		log.Printf("Failed to announce challenge result: %v", err)
	}

	return nil
}

// memberDisplayName prefers the guild nickname over the account username
func memberDisplayName(m *discordgo.Member) string {
	if m == nil || m.User == nil {
		return ""
	}
	if m.Nick != "" {
		return m.Nick
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}
