package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

type ctxKey string

const TraceKey ctxKey = "trace"

const NotImplementedMsg = "not implemented"

// Discord is the part of *discordgo.Session the handlers talk to.
type Discord interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

type State struct {
	Dg        Discord
	Config    *GuildConfig
	ConfigErr error
	Reporter  Reporter
}

// MakeState builds the handler state. A nil config leaves the bot unconfigured, configErr explains why.
func MakeState(dg Discord, config *GuildConfig, configErr error, reporter Reporter) State {
	if isNilSession(dg) {
		log.Fatalf("discord session must be non nil")
	}
	return State{
		Dg:        dg,
		Config:    config,
		ConfigErr: configErr,
		Reporter:  reporter,
	}
}

func isNilSession(dg Discord) bool {
	if dg == nil {
		return true
	}
	s, ok := dg.(*discordgo.Session)
	return ok && s == nil
}

func (state *State) IsConfigured() bool {
	return state.Config != nil
}

func (state *State) HandleReady(_ *discordgo.Session, r *discordgo.Ready) {
	var name, appID string
	if r.User != nil {
		name, appID = r.User.Username, r.User.ID
	}
	if r.Application != nil && r.Application.ID != "" {
		appID = r.Application.ID
	}
	if r.Shard != nil {
		slog.Info("connected to discord", "user", name, "shard", r.Shard[0], "shards", r.Shard[1])
	} else {
		slog.Info("connected to discord", "user", name)
	}

	if err := state.RegisterCommands(appID); err != nil {
		slog.Error("failed to register guild commands", "err", err)
	}
}

// RegisterCommands overwrites the configured guild's commands. Nothing is registered while unconfigured.
func (state *State) RegisterCommands(appID string) error {
	if !state.IsConfigured() {
		slog.Warn("no valid configuration found, no commands will be registered", "err", state.ConfigErr)
		return nil
	}

	guildID := state.Config.GuildID
	created, err := state.Dg.ApplicationCommandBulkOverwrite(appID, guildID, Commands)
	if err != nil {
		return fmt.Errorf("failed to bulk overwrite commands for guild=%s: %w", guildID, err)
	}

	names := make([]string, 0, len(created))
	for _, cmd := range created {
		names = append(names, cmd.Name)
	}
	slog.Info("registered guild commands", "guild", guildID, "commands", names)
	return nil
}

func (state *State) HandleInteractionCreate(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return
	}

	trace := uuid.NewString()
	ctx := context.WithValue(context.Background(), TraceKey, trace)

	cmd := ic.ApplicationCommandData()
	slog.Info("received a command", "trace", trace, "name", cmd.Name, "guild", ic.GuildID)

	content := truncateContent(state.Reply(ctx, cmd.Name), MaxContentLength)

	interactionRespond(ctx, state.Dg, ic.Interaction, createStringResponse(content))
}

// Reply produces the text answer for a command.
func (state *State) Reply(ctx context.Context, name string) string {
	switch name {
	case QueryCommand:
		if !state.IsConfigured() {
			return noConfigMsg(name)
		}
		return state.Reporter.FormatQuery(ctx, *state.Config)
	case StatusCommand:
		if !state.IsConfigured() {
			return noConfigMsg(name)
		}
		return state.Reporter.FormatStatus(ctx, *state.Config)
	default:
		return NotImplementedMsg
	}
}

func noConfigMsg(name string) string {
	return fmt.Sprintf("no valid configuration found for %s command", name)
}

func createStringResponse(msg string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
		},
	}
}

func interactionRespond(ctx context.Context, dg Discord, i *discordgo.Interaction, r *discordgo.InteractionResponse) {
	if err := dg.InteractionRespond(i, r); err != nil {
		slog.Error("failed to send interaction response", "trace", ctx.Value(TraceKey), "err", err)
	}
}
