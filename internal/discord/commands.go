package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// RegisterCommands overwrites the guild's application commands with the bot's
// command set. Bulk overwrite keeps retired commands from lingering.
func RegisterCommands(session *discordgo.Session, appID, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "party",
			Description: "Post the party announcement panel in this channel",
		},
	}
	if _, err := session.ApplicationCommandBulkOverwrite(appID, guildID, commands); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}
