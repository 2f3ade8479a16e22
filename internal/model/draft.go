package model

import (
	"fmt"
	"strconv"
)

// Validation constants for draft configuration
const (
	MinPlayerCount   = 1
	MaxPlayerCount   = 9
	MaxRanksPerDraft = 5
)

// PlayerCount is how many additional players the leader is looking for.
// It is either "any amount" or an exact count between MinPlayerCount and
// MaxPlayerCount.
type PlayerCount struct {
	Any bool `json:"any"`
	N   int  `json:"n,omitempty"`
}

// AnyCount returns the "any amount" player count
func AnyCount() PlayerCount {
	return PlayerCount{Any: true}
}

// ExactCount returns a player count of exactly n
func ExactCount(n int) PlayerCount {
	return PlayerCount{N: n}
}

// Valid reports whether the count is "any" or within the allowed range
func (c PlayerCount) Valid() bool {
	if c.Any {
		return true
	}
	return c.N >= MinPlayerCount && c.N <= MaxPlayerCount
}

// String renders the count the way menus and announcements display it
func (c PlayerCount) String() string {
	if c.Any {
		return "Any"
	}
	return fmt.Sprintf("+%d", c.N)
}

// ParsePlayerCount parses a menu selection value ("any" or "1".."9")
func ParsePlayerCount(value string) (PlayerCount, error) {
	if value == "any" {
		return AnyCount(), nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return PlayerCount{}, fmt.Errorf("invalid player count %q", value)
	}
	c := ExactCount(n)
	if !c.Valid() {
		return PlayerCount{}, fmt.Errorf("player count %d out of range", n)
	}
	return c, nil
}

// Rank identifies a rank label a party is open to
type Rank string

// Rank constants, lowest to highest. RankAny means unrestricted.
const (
	RankAny      Rank = "Any"
	RankHerald   Rank = "Herald"
	RankGuardian Rank = "Guardian"
	RankCrusader Rank = "Crusader"
	RankArchon   Rank = "Archon"
	RankLegend   Rank = "Legend"
	RankAncient  Rank = "Ancient"
	RankDivine   Rank = "Divine"
	RankImmortal Rank = "Immortal"
)

// Ranks lists all selectable ranks in display order
var Ranks = []Rank{
	RankAny, RankHerald, RankGuardian, RankCrusader, RankArchon,
	RankLegend, RankAncient, RankDivine, RankImmortal,
}

// Valid reports whether the rank is a known label
func (r Rank) Valid() bool {
	for _, known := range Ranks {
		if r == known {
			return true
		}
	}
	return false
}

// Draft is a user's in-progress party configuration before publication.
// At most one draft exists per user; starting a new one replaces the old.
type Draft struct {
	OwnerID        string      `json:"owner_id"`
	Mode           Mode        `json:"mode"`
	Count          PlayerCount `json:"count"`
	Ranks          []Rank      `json:"ranks,omitempty"`
	VoiceChannelID string      `json:"voice_channel_id,omitempty"`
}

// NewDraft returns a draft with publication defaults: looking for one more
// player, unrestricted ranks, no voice channel.
func NewDraft(ownerID string, mode Mode) *Draft {
	return &Draft{
		OwnerID: ownerID,
		Mode:    mode,
		Count:   ExactCount(1),
	}
}

// EffectiveRanks returns the rank set used at publication. An empty
// selection means unrestricted and collapses to RankAny.
func (d *Draft) EffectiveRanks() []Rank {
	if len(d.Ranks) == 0 {
		return []Rank{RankAny}
	}
	return d.Ranks
}
