package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

const DefaultSteamURL = "https://api.steampowered.com"

type Options struct {
	Token string `long:"token" env:"DISCORD_TOKEN" description:"Discord bot token"`
	AppID string `long:"app-id" env:"DISCORD_APP_ID" description:"Discord application id, used when registering commands"`

	SteamAPIKey string `long:"steam-api-key" env:"STEAM_API_KEY" description:"Steam Web API key"`
	HostString  string `long:"host-string" env:"ARMA_HOST_STRING" description:"Comma separated list of ip:port server addresses"`
	GuildID     string `long:"guild-id" env:"GUILD_ID" description:"Discord guild the servers belong to"`

	SteamURL    string        `long:"steam-url" env:"STEAM_API_URL" description:"Steam Web API base url" default:"https://api.steampowered.com"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"STEAM_HTTP_TIMEOUT" description:"Timeout for a single Steam request" default:"10s"`
	LookupDelay time.Duration `long:"lookup-delay" env:"LOOKUP_DELAY" description:"Pause between successive server lookups" default:"50ms"`

	LogLevel  string `long:"log-level" env:"LOG_LEVEL" description:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string `long:"log-format" env:"LOG_FORMAT" description:"Log format (text or json)" default:"text"`
}

// ParseOptions reads flags from args, falling back to the environment for anything not given.
func ParseOptions(args []string) (Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// GuildConfig is the per-guild configuration the commands run against. It is never mutated after startup.
type GuildConfig struct {
	SteamAPIKey string
	HostSpec    string
	GuildID     string
}

func (c GuildConfig) Addresses() []string {
	return ParseHostSpec(c.HostSpec)
}

// NewGuildConfig returns a complete configuration, or a MissingConfigError naming every missing field.
func NewGuildConfig(steamAPIKey, hostSpec, guildID string) (*GuildConfig, error) {
	var missing []string
	if strings.TrimSpace(steamAPIKey) == "" {
		missing = append(missing, "STEAM_API_KEY")
	}
	if len(ParseHostSpec(hostSpec)) == 0 {
		missing = append(missing, "ARMA_HOST_STRING")
	}
	guildID = strings.TrimSpace(guildID)
	if _, err := strconv.ParseUint(guildID, 10, 64); err != nil {
		missing = append(missing, "GUILD_ID")
	}
	if len(missing) > 0 {
		return nil, MissingConfigError{Fields: missing}
	}
	return &GuildConfig{
		SteamAPIKey: strings.TrimSpace(steamAPIKey),
		HostSpec:    hostSpec,
		GuildID:     guildID,
	}, nil
}

func (opts Options) GuildConfig() (*GuildConfig, error) {
	return NewGuildConfig(opts.SteamAPIKey, opts.HostString, opts.GuildID)
}

// ParseHostSpec splits a comma separated host string into addresses, dropping blank entries.
func ParseHostSpec(spec string) []string {
	var addresses []string
	for _, part := range strings.Split(spec, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			addresses = append(addresses, addr)
		}
	}
	return addresses
}
