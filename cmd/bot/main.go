package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/castbot/castbot/internal/common/clock"
	"github.com/castbot/castbot/internal/common/uuid"
	"github.com/castbot/castbot/internal/config"
	"github.com/castbot/castbot/internal/handlers/discord"
	"github.com/castbot/castbot/internal/platform"
	challengeRepo "github.com/castbot/castbot/internal/repositories/challenge"
	"github.com/castbot/castbot/internal/repositories/playerstore"
	"github.com/castbot/castbot/internal/repositories/roleconfig"
	"github.com/castbot/castbot/internal/services/castlist"
	challengeService "github.com/castbot/castbot/internal/services/challenge"
	"github.com/castbot/castbot/internal/services/icons"
	"github.com/castbot/castbot/internal/services/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	roles, err := config.LoadRoles(cfg.RolesFile)
	if err != nil {
		log.Fatalf("Failed to load role configuration: %v", err)
	}

	// Initialize Redis client for the challenge minigame
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	roleRepo, err := roleconfig.NewFile(&roleconfig.Config{
		DataDir:          cfg.DataDir,
		SeedPronounRoles: roles.PronounRoles,
	})
	if err != nil {
		log.Fatalf("Failed to create role config repository: %v", err)
	}

	storeRepo, err := playerstore.NewFile(&playerstore.Config{
		Path:   filepath.Join(cfg.DataDir, "playerData.json"),
		Tribes: roleRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create player store: %v", err)
	}

	chalRepo, err := challengeRepo.NewRedis(&challengeRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.ChallengeTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create challenge repository: %v", err)
	}

	// Shared session for the gateway and REST calls
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	platformClient, err := platform.NewDiscord(&platform.Config{
		Session: session,
	})
	if err != nil {
		log.Fatalf("Failed to create platform client: %v", err)
	}

	systemClock := &clock.DefaultClock{}

	// Initialize services
	rosterSvc, err := roster.New(&roster.Config{
		Store:  storeRepo,
		Tribes: roleRepo,
		Roles:  roles,
		Clock:  systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create roster service: %v", err)
	}

	castlistSvc, err := castlist.New(&castlist.Config{
		Store:  storeRepo,
		Tribes: roleRepo,
		Roles:  roles,
		Clock:  systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create castlist service: %v", err)
	}

	iconsSvc, err := icons.New(&icons.Config{
		Platform: platformClient,
		Store:    storeRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create icons service: %v", err)
	}

	challengeSvc, err := challengeService.New(&challengeService.Config{
		Repo:  chalRepo,
		UUID:  uuid.New(),
		Clock: systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create challenge service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Roster:        rosterSvc,
		Castlist:      castlistSvc,
		Icons:         iconsSvc,
		Challenge:     challengeSvc,
		Store:         storeRepo,
		Roles:         roleRepo,
		Platform:      platformClient,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
