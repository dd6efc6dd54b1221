package main

import (
	"armacord/app"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

// Registers the guild commands without starting the gateway, e.g. after changing GUILD_ID.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("failed to load .env file")
	}

	opts, err := app.ParseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse options: %v", err)
	}
	app.SetupLogger(os.Stderr, opts.LogLevel, opts.LogFormat)

	config, err := opts.GuildConfig()
	if err != nil {
		log.Fatalf("refusing to register commands: %v", err)
	}
	if opts.AppID == "" {
		log.Fatal("an application id is required to register commands")
	}

	dg, err := discordgo.New(fmt.Sprintf("Bot %s", opts.Token))
	if err != nil {
		log.Fatalf("failed to construct discord client: %v", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			slog.Error("failed to close discord dg", "err", err)
		}
	}()

	state := app.MakeState(dg, config, nil, app.Reporter{})
	if err := state.RegisterCommands(opts.AppID); err != nil {
		log.Fatal(err)
	}
}
