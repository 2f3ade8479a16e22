package model

import "time"

// Mode identifies the game mode a party is recruiting for
type Mode string

// Game mode constants
const (
	ModeRanked    Mode = "Ranked"
	ModeNormal    Mode = "Normal"
	ModeBattlecup Mode = "Battlecup"
	ModeInhouse   Mode = "Inhouse"
)

// Modes lists all valid game modes in display order
var Modes = []Mode{ModeRanked, ModeNormal, ModeBattlecup, ModeInhouse}

// Valid reports whether the mode is one of the known game modes
func (m Mode) Valid() bool {
	switch m {
	case ModeRanked, ModeNormal, ModeBattlecup, ModeInhouse:
		return true
	}
	return false
}

// Party represents a published, live request for players.
// The leader is not stored in MemberIDs; membership there tracks joiners only.
type Party struct {
	ID            string    `json:"id"`
	Mode          Mode      `json:"mode"`
	LeaderID      string    `json:"leader_id"`
	CreatedAt     time.Time `json:"created_at"`
	MemberIDs     []string  `json:"member_ids,omitempty"`
	ThreadID      string    `json:"thread_id"`
	MessageID     string    `json:"message_id"`
	ChannelID     string    `json:"channel_id"`
	Warned        bool      `json:"warned"`
	WarnMessageID string    `json:"warn_message_id,omitempty"`
}

// HasMember reports whether the user already joined the party.
// The leader is implicit and never a member entry.
func (p *Party) HasMember(userID string) bool {
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Age returns how long the party has been live as of now
func (p *Party) Age(now time.Time) time.Duration {
	return now.Sub(p.CreatedAt)
}

// PendingDeletion is a promise to destroy a thread after a retention window.
// Keyed by thread id; re-enqueueing the same thread overwrites DeleteAt.
type PendingDeletion struct {
	ThreadID  string    `json:"thread_id"`
	ChannelID string    `json:"channel_id"`
	DeleteAt  time.Time `json:"delete_at"`
}

// Due reports whether the deletion should be carried out
func (d *PendingDeletion) Due(now time.Time) bool {
	return !now.Before(d.DeleteAt)
}
