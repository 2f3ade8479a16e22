package service

import "strings"

// Action tags carried in interaction custom ids. A custom id is an action tag
// and a target entity id (party id or game mode) joined by an underscore.
const (
	ActionStart    = "start"
	ActionPublish  = "publish"
	ActionJoin     = "join"
	ActionExtend   = "extend"
	ActionStop     = "stop"
	ActionSetCount = "setcount"
	ActionSetRanks = "setranks"
	ActionSetVoice = "setvc"
)

// EncodeActionID builds the custom id for an action against a target
func EncodeActionID(action, target string) string {
	return action + "_" + target
}

// DecodeActionID splits a custom id into action tag and target. The target
// may itself contain underscores; only the first separator counts.
func DecodeActionID(id string) (action, target string, ok bool) {
	action, target, ok = strings.Cut(id, "_")
	if !ok || action == "" || target == "" {
		return "", "", false
	}
	return action, target, true
}
