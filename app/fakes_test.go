package app

import (
	"context"
	"errors"
	"sync"

	"github.com/bwmarrin/discordgo"
)

type fakeSteam struct {
	mu        sync.Mutex
	calls     []string
	atAddress map[string]ServersAtAddressResponse
	list      map[string]ServerListResponse
	errs      map[string]error
}

func (f *fakeSteam) record(address string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, address)
	if err, ok := f.errs[address]; ok {
		return err
	}
	return nil
}

func (f *fakeSteam) FetchServersAtAddress(_ context.Context, address string) (ServersAtAddressResponse, error) {
	if err := f.record(address); err != nil {
		return ServersAtAddressResponse{}, err
	}
	return f.atAddress[address], nil
}

func (f *fakeSteam) FetchServerList(_ context.Context, _ string, address string) (ServerListResponse, error) {
	if err := f.record(address); err != nil {
		return ServerListResponse{}, err
	}
	return f.list[address], nil
}

func (f *fakeSteam) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeDiscord struct {
	responses   []*discordgo.InteractionResponse
	respondErr  error
	overwritten map[string][]*discordgo.ApplicationCommand
	appID       string
}

func (f *fakeDiscord) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return f.respondErr
}

func (f *fakeDiscord) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	if guildID == "" {
		return nil, errors.New("missing guild")
	}
	if f.overwritten == nil {
		f.overwritten = map[string][]*discordgo.ApplicationCommand{}
	}
	f.appID = appID
	f.overwritten[guildID] = commands
	return commands, nil
}

var testServer = GameServer{
	Addr:       "1.2.3.4:2303",
	GamePort:   2302,
	SteamID:    "90000000000000001",
	Name:       "TestServer",
	AppID:      107410,
	GameDir:    "Arma3",
	Version:    "2.18",
	Product:    "Arma3",
	Players:    5,
	MaxPlayers: 32,
	Map:        "Altis",
	Secure:     true,
	Dedicated:  true,
	OS:         "l",
	GameType:   "coop",
}
