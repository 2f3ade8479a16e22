// Package discord adapts the bot to the Discord REST API via discordgo.
//
// It contains the Messenger implementation the services post through, the
// renderers that build embeds and message components for the panels and
// announcements, and slash command registration.
package discord
