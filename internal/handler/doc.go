// Package handler routes Discord interactions to the party services.
//
// One InteractionHandler covers the /party slash command, the mode picker and
// announcement buttons, and the setup panel select menus. Custom ids carry an
// action tag plus a target (game mode or party id); anything stale, malformed
// or unauthorized is acknowledged without a visible response.
package handler
