package main

import (
	"armacord/app"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("failed to load .env file")
	}

	opts, err := app.ParseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse options: %v", err)
	}
	app.SetupLogger(os.Stderr, opts.LogLevel, opts.LogFormat)

	config, configErr := opts.GuildConfig()
	if configErr != nil {
		slog.Warn("starting without a guild configuration", "err", configErr)
	}

	dg, err := discordgo.New(fmt.Sprintf("Bot %s", opts.Token))
	if err != nil {
		log.Fatalf("failed to construct discord client: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds
	defer func() {
		if err := dg.Close(); err != nil {
			slog.Error("failed to close discord session", "err", err)
		}
	}()

	steam := app.MakeSteamClient(opts.SteamURL, opts.HTTPTimeout)
	reporter := app.MakeReporter(steam, opts.LookupDelay)

	state := app.MakeState(dg, config, configErr, reporter)
	dg.AddHandler(state.HandleReady)
	dg.AddHandler(state.HandleInteractionCreate)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	slog.Info("starting armacord service")
	if err = dg.Open(); err != nil {
		log.Fatalf("failed to connect to events: %v", err)
	}

	slog.Info("armacord service is listening for events")
	<-signalChan
}
