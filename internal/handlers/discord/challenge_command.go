package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/castbot/castbot/internal/services/challenge"
)

// ChallengeCommand opens a rock-paper-scissors challenge anyone in the
// channel can accept. The challenger's object stays hidden until a
// responder picks theirs.
type ChallengeCommand struct {
	BaseCommand
	challenge challenge.Service
}

// NewChallengeCommand creates a new challenge command handler
func NewChallengeCommand(challengeSvc challenge.Service) *ChallengeCommand {
	var objectChoices []*discordgo.ApplicationCommandOptionChoice
	for _, choice := range challengeSvc.Choices() {
		objectChoices = append(objectChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  choice.Name,
			Value: choice.Name,
		})
	}

	return &ChallengeCommand{
		BaseCommand: BaseCommand{
			Name:        "challenge",
			Description: "Challenge the channel to rock paper scissors",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "object",
					Description: "Your secret object",
					Required:    true,
					Choices:     objectChoices,
				},
			},
		},
		challenge: challengeSvc,
	}
}

// Handle processes the challenge command
func (c *ChallengeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	var objectName string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "object" {
			objectName = opt.StringValue()
		}
	}

	challengerName := memberDisplayName(i.Member)

	output, err := c.challenge.Create(context.Background(), &challenge.CreateInput{
		ChallengerID:   i.Member.User.ID,
		ChallengerName: challengerName,
		ObjectName:     objectName,
	})
	if err != nil {
		log.Printf("Error creating challenge: %v", err)
		return RespondWithEphemeralMessage(s, i, userFacingError(err))
	}

	acceptButton := discordgo.Button{
		Label:    "Accept",
		Style:    discordgo.PrimaryButton,
		CustomID: AcceptButtonPrefix + output.ChallengeID,
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("%s has issued a rock paper scissors challenge! First to accept plays.", challengerName),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{acceptButton},
				},
			},
		},
	})
}
