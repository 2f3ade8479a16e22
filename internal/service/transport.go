package service

import "context"

// ActionStyle hints how a message action button should be presented
type ActionStyle int

const (
	ActionStylePrimary ActionStyle = iota
	ActionStyleSuccess
	ActionStyleDanger
)

// MessageAction describes an interactive button attached to a posted message.
// ID carries the action tag and target entity id (see EncodeActionID).
type MessageAction struct {
	ID    string
	Label string
	Style ActionStyle
}

// Messenger is the capability surface the lifecycle machinery needs from the
// chat transport. Implementations must be safe for concurrent use; every call
// may fail and callers treat failures as cosmetic.
type Messenger interface {
	// PostMessage posts content with optional action buttons into a channel
	// or thread and returns the new message's id.
	PostMessage(ctx context.Context, channelID, content string, actions []MessageAction) (string, error)

	// DeleteMessage deletes a single message.
	DeleteMessage(ctx context.Context, channelID, messageID string) error

	// DeleteThread destroys a thread entirely.
	DeleteThread(ctx context.Context, threadID string) error

	// PurgeThread removes the messages inside a thread, leaving it in place.
	PurgeThread(ctx context.Context, threadID string) error

	// AddThreadMember grants a user access to a thread.
	AddThreadMember(ctx context.Context, threadID, userID string) error
}
