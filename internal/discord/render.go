package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/forgo/party/internal/model"
	"github.com/forgo/party/internal/service"
)

// maxMenuOptions is the Discord limit on select menu options.
const maxMenuOptions = 25

// modeMeta is the presentation metadata per game mode
var modeMeta = map[model.Mode]struct {
	Emoji string
	Color int
}{
	model.ModeRanked:    {Emoji: "⚔️", Color: 0xe74c3c},
	model.ModeNormal:    {Emoji: "🎮", Color: 0x2ecc71},
	model.ModeBattlecup: {Emoji: "🏆", Color: 0xf1c40f},
	model.ModeInhouse:   {Emoji: "🏠", Color: 0x9b59b6},
}

// VoiceChannel is a voice channel offered in the setup panel
type VoiceChannel struct {
	ID   string
	Name string
}

// OpenVoiceChannels filters a guild's channels down to voice channels visible
// to everyone, capped at what a select menu can hold.
func OpenVoiceChannels(channels []*discordgo.Channel, guildID string) []VoiceChannel {
	var open []VoiceChannel
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildVoice {
			continue
		}
		if hiddenFromEveryone(ch, guildID) {
			continue
		}
		open = append(open, VoiceChannel{ID: ch.ID, Name: ch.Name})
		if len(open) == maxMenuOptions-1 {
			break
		}
	}
	return open
}

// hiddenFromEveryone checks whether the @everyone role is denied view access.
// The @everyone role shares the guild's id.
func hiddenFromEveryone(ch *discordgo.Channel, guildID string) bool {
	for _, overwrite := range ch.PermissionOverwrites {
		if overwrite.Type == discordgo.PermissionOverwriteTypeRole && overwrite.ID == guildID {
			return overwrite.Deny&discordgo.PermissionViewChannel != 0
		}
	}
	return false
}

// ModePicker renders the public panel inviting users to start an announcement
func ModePicker() (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       "🔎 Looking for players?",
		Description: "Pick a game mode to set up your announcement.",
		Color:       0x3498db,
	}

	row := discordgo.ActionsRow{}
	for _, mode := range model.Modes {
		row.Components = append(row.Components, discordgo.Button{
			CustomID: service.EncodeActionID(service.ActionStart, string(mode)),
			Label:    string(mode),
			Style:    discordgo.PrimaryButton,
			Emoji:    &discordgo.ComponentEmoji{Name: modeMeta[mode].Emoji},
		})
	}
	return embed, []discordgo.MessageComponent{row}
}

// SetupPanel renders the ephemeral draft editor: a summary line plus menus
// for player count, ranks and voice channel, and the publish button.
func SetupPanel(draft *model.Draft, voice []VoiceChannel) (string, []discordgo.MessageComponent) {
	content := fmt.Sprintf("%s **%s** — configure your announcement, then publish.",
		modeMeta[draft.Mode].Emoji, draft.Mode)

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{countMenu(draft)}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{rankMenu(draft)}},
	}
	if len(voice) > 0 {
		components = append(components,
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{voiceMenu(draft, voice)}})
	}
	components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: service.EncodeActionID(service.ActionPublish, string(draft.Mode)),
			Label:    "Publish",
			Style:    discordgo.SuccessButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "📣"},
		},
	}})
	return content, components
}

func countMenu(draft *model.Draft) discordgo.SelectMenu {
	options := []discordgo.SelectMenuOption{{
		Label:   "Any amount",
		Value:   "any",
		Default: draft.Count.Any,
	}}
	for n := model.MinPlayerCount; n <= model.MaxPlayerCount; n++ {
		options = append(options, discordgo.SelectMenuOption{
			Label:   fmt.Sprintf("+%d", n),
			Value:   strconv.Itoa(n),
			Default: !draft.Count.Any && draft.Count.N == n,
		})
	}
	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    service.EncodeActionID(service.ActionSetCount, string(draft.Mode)),
		Placeholder: "How many players are you looking for?",
		Options:     options,
	}
}

func rankMenu(draft *model.Draft) discordgo.SelectMenu {
	selected := make(map[model.Rank]bool, len(draft.Ranks))
	for _, rank := range draft.Ranks {
		selected[rank] = true
	}

	options := make([]discordgo.SelectMenuOption, 0, len(model.Ranks))
	for _, rank := range model.Ranks {
		options = append(options, discordgo.SelectMenuOption{
			Label:   string(rank),
			Value:   string(rank),
			Default: selected[rank],
		})
	}

	minValues := 1
	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    service.EncodeActionID(service.ActionSetRanks, string(draft.Mode)),
		Placeholder: "Which ranks can join?",
		MinValues:   &minValues,
		MaxValues:   model.MaxRanksPerDraft,
		Options:     options,
	}
}

func voiceMenu(draft *model.Draft, voice []VoiceChannel) discordgo.SelectMenu {
	options := []discordgo.SelectMenuOption{{
		Label:   "No voice channel",
		Value:   "none",
		Default: draft.VoiceChannelID == "",
	}}
	for _, ch := range voice {
		options = append(options, discordgo.SelectMenuOption{
			Label:   ch.Name,
			Value:   ch.ID,
			Default: draft.VoiceChannelID == ch.ID,
		})
	}
	return discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    service.EncodeActionID(service.ActionSetVoice, string(draft.Mode)),
		Placeholder: "Voice channel (optional)",
		Options:     options,
	}
}

// Announcement renders the public party embed
func Announcement(draft *model.Draft, now time.Time) *discordgo.MessageEmbed {
	meta := modeMeta[draft.Mode]

	ranks := draft.EffectiveRanks()
	labels := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		labels = append(labels, string(rank))
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Players needed", Value: draft.Count.String(), Inline: true},
		{Name: "Ranks", Value: strings.Join(labels, ", "), Inline: true},
		{Name: "Posted", Value: fmt.Sprintf("<t:%d:R>", now.Unix()), Inline: true},
	}
	if draft.VoiceChannelID != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Voice", Value: fmt.Sprintf("<#%s>", draft.VoiceChannelID), Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s — looking for players", meta.Emoji, draft.Mode),
		Description: fmt.Sprintf("<@%s> is recruiting. Hit **Join** to get thread access.", draft.OwnerID),
		Color:       meta.Color,
		Fields:      fields,
	}
}

// AnnouncementActions renders the join and stop buttons for a published party
func AnnouncementActions(partyID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: service.EncodeActionID(service.ActionJoin, partyID),
			Label:    "Join",
			Style:    discordgo.SuccessButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "👋"},
		},
		discordgo.Button{
			CustomID: service.EncodeActionID(service.ActionStop, partyID),
			Label:    "Close",
			Style:    discordgo.DangerButton,
		},
	}}}
}

// ThreadName names the discussion thread attached to an announcement
func ThreadName(mode model.Mode) string {
	return fmt.Sprintf("%s %s party", modeMeta[mode].Emoji, mode)
}

// JoinNotice is the message posted into the thread when someone joins
func JoinNotice(userID string) string {
	return fmt.Sprintf("👋 <@%s> joined the party!", userID)
}
