package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/forgo/party/internal/service"
)

// purgeBatchSize is the Discord bulk-delete limit per request.
const purgeBatchSize = 100

// Messenger adapts a discordgo session to the transport surface the services
// depend on. All methods pass the caller's context through to the REST layer.
type Messenger struct {
	session *discordgo.Session
}

// NewMessenger creates a messenger over an open session
func NewMessenger(session *discordgo.Session) *Messenger {
	return &Messenger{session: session}
}

// PostMessage posts content with optional action buttons and returns the id
// of the new message.
func (m *Messenger) PostMessage(ctx context.Context, channelID, content string, actions []service.MessageAction) (string, error) {
	send := &discordgo.MessageSend{Content: content}
	if len(actions) > 0 {
		row := discordgo.ActionsRow{}
		for _, action := range actions {
			row.Components = append(row.Components, discordgo.Button{
				CustomID: action.ID,
				Label:    action.Label,
				Style:    buttonStyle(action.Style),
			})
		}
		send.Components = []discordgo.MessageComponent{row}
	}

	msg, err := m.session.ChannelMessageSendComplex(channelID, send, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("post message to %s: %w", channelID, err)
	}
	return msg.ID, nil
}

// DeleteMessage deletes a single message
func (m *Messenger) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if err := m.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete message %s in %s: %w", messageID, channelID, err)
	}
	return nil
}

// DeleteThread destroys a thread entirely. Threads are channels, so this is a
// channel delete.
func (m *Messenger) DeleteThread(ctx context.Context, threadID string) error {
	if _, err := m.session.ChannelDelete(threadID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete thread %s: %w", threadID, err)
	}
	return nil
}

// PurgeThread bulk-deletes the messages inside a thread, leaving the thread
// in place. Messages older than the bulk-delete cutoff are left behind; the
// thread itself is destroyed later anyway.
func (m *Messenger) PurgeThread(ctx context.Context, threadID string) error {
	for {
		messages, err := m.session.ChannelMessages(threadID, purgeBatchSize, "", "", "", discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("list messages in thread %s: %w", threadID, err)
		}
		if len(messages) == 0 {
			return nil
		}

		ids := make([]string, 0, len(messages))
		for _, msg := range messages {
			ids = append(ids, msg.ID)
		}
		if err := m.session.ChannelMessagesBulkDelete(threadID, ids, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("purge thread %s: %w", threadID, err)
		}
		if len(messages) < purgeBatchSize {
			return nil
		}
	}
}

// AddThreadMember grants a user access to a thread
func (m *Messenger) AddThreadMember(ctx context.Context, threadID, userID string) error {
	if err := m.session.ThreadMemberAdd(threadID, userID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("add %s to thread %s: %w", userID, threadID, err)
	}
	return nil
}

// CreateThread starts a public thread on an existing message and returns the
// thread id.
func (m *Messenger) CreateThread(ctx context.Context, channelID, messageID, name string) (string, error) {
	thread, err := m.session.MessageThreadStartComplex(channelID, messageID, &discordgo.ThreadStart{
		Name:                name,
		AutoArchiveDuration: 1440,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("create thread on message %s: %w", messageID, err)
	}
	return thread.ID, nil
}

func buttonStyle(style service.ActionStyle) discordgo.ButtonStyle {
	switch style {
	case service.ActionStyleSuccess:
		return discordgo.SuccessButton
	case service.ActionStyleDanger:
		return discordgo.DangerButton
	default:
		return discordgo.PrimaryButton
	}
}
