package handler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/forgo/party/internal/discord"
	"github.com/forgo/party/internal/model"
	"github.com/forgo/party/internal/service"
)

// panelAckTTL is how long the ephemeral "panel posted" ack lingers.
const panelAckTTL = 2 * time.Second

// InteractionHandler routes Discord interactions (the /party command, buttons
// and select menus) to the services. Stale or malformed custom ids are
// acknowledged silently; users clicking leftovers of ended parties should not
// see an error banner.
type InteractionHandler struct {
	drafts    *service.DraftService
	parties   *service.PartyService
	lifecycle *service.LifecycleService
	guildID   string
}

// InteractionHandlerConfig holds configuration for the interaction handler
type InteractionHandlerConfig struct {
	Drafts    *service.DraftService
	Parties   *service.PartyService
	Lifecycle *service.LifecycleService
	GuildID   string
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(cfg InteractionHandlerConfig) *InteractionHandler {
	return &InteractionHandler{
		drafts:    cfg.Drafts,
		parties:   cfg.Parties,
		lifecycle: cfg.Lifecycle,
		guildID:   cfg.GuildID,
	}
}

// Handle is the discordgo InteractionCreate callback
func (h *InteractionHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == "party" {
			h.handlePanelCommand(ctx, s, i)
		}
	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		action, target, ok := service.DecodeActionID(data.CustomID)
		if !ok {
			ackSilently(s, i)
			return
		}

		switch action {
		case service.ActionStart:
			h.handleStart(ctx, s, i, model.Mode(target))
		case service.ActionSetCount:
			h.handleSetCount(ctx, s, i, data.Values)
		case service.ActionSetRanks:
			h.handleSetRanks(ctx, s, i, data.Values)
		case service.ActionSetVoice:
			h.handleSetVoice(ctx, s, i, data.Values)
		case service.ActionPublish:
			h.handlePublish(ctx, s, i)
		case service.ActionJoin:
			h.handleJoin(ctx, s, i, target)
		case service.ActionExtend:
			h.handleExtend(ctx, s, i, target)
		case service.ActionStop:
			h.handleStop(ctx, s, i, target)
		default:
			ackSilently(s, i)
		}
	}
}

// handlePanelCommand posts the public mode picker into the channel
func (h *InteractionHandler) handlePanelCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed, components := discord.ModePicker()
	_, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		slog.Error("failed to post party panel", "channel", i.ChannelID, "error", err)
		respondEphemeral(s, i, "⚠️ Could not post the panel here.")
		return
	}

	respondEphemeral(s, i, "Panel posted.")
	time.AfterFunc(panelAckTTL, func() {
		_ = s.InteractionResponseDelete(i.Interaction)
	})
}

// handleStart creates a fresh draft and shows the leader their setup panel
func (h *InteractionHandler) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, mode model.Mode) {
	draft, err := h.drafts.Start(ctx, interactionUser(i), mode)
	switch {
	case errors.Is(err, service.ErrAlreadyLeading):
		respondEphemeral(s, i, "⚠️ You already lead an active party. Close it before starting a new one.")
		return
	case err != nil:
		ackSilently(s, i)
		return
	}

	content, components := discord.SetupPanel(draft, h.voiceChannels(s))
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("failed to show setup panel", "user", draft.OwnerID, "error", err)
	}
}

func (h *InteractionHandler) handleSetCount(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, values []string) {
	if len(values) != 1 {
		ackSilently(s, i)
		return
	}
	count, err := model.ParsePlayerCount(values[0])
	if err != nil {
		ackSilently(s, i)
		return
	}

	draft, err := h.drafts.SetPlayerCount(ctx, interactionUser(i), count)
	if err != nil {
		ackSilently(s, i)
		return
	}
	h.updatePanel(s, i, draft)
}

func (h *InteractionHandler) handleSetRanks(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, values []string) {
	ranks := make([]model.Rank, 0, len(values))
	for _, value := range values {
		ranks = append(ranks, model.Rank(value))
	}

	draft, err := h.drafts.SetRanks(ctx, interactionUser(i), ranks)
	if err != nil {
		ackSilently(s, i)
		return
	}
	h.updatePanel(s, i, draft)
}

func (h *InteractionHandler) handleSetVoice(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, values []string) {
	if len(values) != 1 {
		ackSilently(s, i)
		return
	}
	channelID := values[0]
	if channelID == "none" {
		channelID = ""
	}

	draft, err := h.drafts.SetVoiceChannel(ctx, interactionUser(i), channelID)
	if err != nil {
		ackSilently(s, i)
		return
	}
	h.updatePanel(s, i, draft)
}

// handlePublish turns the draft into a live party. The announcement message
// and thread are created first; the registry insert is the commit point, and
// transport failures after it are logged but never rolled back.
func (h *InteractionHandler) handlePublish(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUser(i)
	draft, err := h.drafts.Consume(ctx, userID)
	if err != nil {
		ackSilently(s, i)
		return
	}

	msg, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{discord.Announcement(draft, time.Now())},
	}, discordgo.WithContext(ctx))
	if err != nil {
		slog.Error("failed to post announcement", "user", userID, "error", err)
		updateEphemeral(s, i, "⚠️ Publishing failed. Start over with the panel.")
		return
	}

	thread, err := s.MessageThreadStartComplex(i.ChannelID, msg.ID, &discordgo.ThreadStart{
		Name:                discord.ThreadName(draft.Mode),
		AutoArchiveDuration: 1440,
	}, discordgo.WithContext(ctx))
	if err != nil {
		slog.Error("failed to create party thread", "user", userID, "error", err)
		_ = s.ChannelMessageDelete(i.ChannelID, msg.ID, discordgo.WithContext(ctx))
		updateEphemeral(s, i, "⚠️ Publishing failed. Start over with the panel.")
		return
	}

	party, err := h.parties.Publish(ctx, draft, thread.ID, msg.ID, i.ChannelID)
	if err != nil {
		slog.Error("failed to register party", "user", userID, "error", err)
		_, _ = s.ChannelDelete(thread.ID, discordgo.WithContext(ctx))
		_ = s.ChannelMessageDelete(i.ChannelID, msg.ID, discordgo.WithContext(ctx))
		updateEphemeral(s, i, "⚠️ Publishing failed. Start over with the panel.")
		return
	}

	components := discord.AnnouncementActions(party.ID)
	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         msg.ID,
		Components: &components,
	}, discordgo.WithContext(ctx)); err != nil {
		slog.Warn("failed to attach announcement buttons", "party", party.ID, "error", err)
	}

	slog.Info("party published", "party", party.ID, "leader", party.LeaderID, "mode", string(party.Mode))
	updateEphemeral(s, i, "✅ Published! Watch your thread for joiners.")
}

// handleJoin adds the user to the party, then grants thread access and posts
// the join notice. The membership commit happens before either side effect.
func (h *InteractionHandler) handleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, partyID string) {
	userID := interactionUser(i)
	party, err := h.parties.Join(ctx, partyID, userID)
	switch {
	case errors.Is(err, service.ErrPartyNotFound):
		respondEphemeral(s, i, "⚠️ This announcement has already ended.")
		return
	case errors.Is(err, service.ErrSelfJoin):
		respondEphemeral(s, i, "⚠️ This is your own announcement.")
		return
	case errors.Is(err, service.ErrAlreadyMember):
		respondEphemeral(s, i, "⚠️ You already joined this party.")
		return
	case err != nil:
		ackSilently(s, i)
		return
	}

	if err := s.ThreadMemberAdd(party.ThreadID, userID, discordgo.WithContext(ctx)); err != nil {
		slog.Warn("failed to grant thread access", "party", party.ID, "user", userID, "error", err)
	}
	if _, err := s.ChannelMessageSend(party.ThreadID, discord.JoinNotice(userID), discordgo.WithContext(ctx)); err != nil {
		slog.Warn("failed to post join notice", "party", party.ID, "user", userID, "error", err)
	}
	respondEphemeral(s, i, "✅ You're in! Check the party thread.")
}

// handleExtend resets the party's clock and removes the stale warning message
func (h *InteractionHandler) handleExtend(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, partyID string) {
	party, stale, err := h.parties.Extend(ctx, partyID, interactionUser(i))
	if err != nil {
		ackSilently(s, i)
		return
	}

	if stale != "" {
		if err := s.ChannelMessageDelete(party.ThreadID, stale, discordgo.WithContext(ctx)); err != nil {
			slog.Warn("failed to delete stale warning", "party", party.ID, "error", err)
		}
	}
	respondEphemeral(s, i, "⏳ Extended! Your announcement stays open.")
}

// handleStop removes the party and retires its announcement and thread
func (h *InteractionHandler) handleStop(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, partyID string) {
	party, err := h.parties.Stop(ctx, partyID, interactionUser(i))
	if err != nil {
		ackSilently(s, i)
		return
	}

	slog.Info("party stopped", "party", party.ID, "leader", party.LeaderID)
	h.lifecycle.Retire(ctx, party)
	respondEphemeral(s, i, "🔒 Party closed.")
}

// updatePanel re-renders the ephemeral setup panel in place
func (h *InteractionHandler) updatePanel(s *discordgo.Session, i *discordgo.InteractionCreate, draft *model.Draft) {
	content, components := discord.SetupPanel(draft, h.voiceChannels(s))
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
		},
	}); err != nil {
		slog.Warn("failed to update setup panel", "user", draft.OwnerID, "error", err)
	}
}

// voiceChannels lists the guild's joinable voice channels for the setup panel
func (h *InteractionHandler) voiceChannels(s *discordgo.Session) []discord.VoiceChannel {
	channels, err := s.GuildChannels(h.guildID)
	if err != nil {
		slog.Warn("failed to list guild channels", "guild", h.guildID, "error", err)
		return nil
	}
	return discord.OpenVoiceChannels(channels, h.guildID)
}

// interactionUser resolves the acting user for guild and DM interactions
func interactionUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Warn("failed to respond to interaction", "error", err)
	}
}

// updateEphemeral edits the component's own ephemeral message
func updateEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}); err != nil {
		slog.Warn("failed to update interaction message", "error", err)
	}
}

// ackSilently acknowledges without any visible response. Used for stale ids
// and non-leader clicks on leader-only buttons.
func ackSilently(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		slog.Warn("failed to acknowledge interaction", "error", err)
	}
}
