package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const ServersAtAddressPath = "/ISteamApps/GetServersAtAddress/v0001"
const ServerListPath = "/IGameServersService/GetServerList/v1"

// AddressServer is a single entry returned by GetServersAtAddress.
type AddressServer struct {
	Addr     string `json:"addr"`
	GMSIndex int    `json:"gmsindex"`
	SteamID  string `json:"steamid"`
	AppID    int    `json:"appid"`
	GameDir  string `json:"gamedir"`
	Region   int    `json:"region"`
	Secure   bool   `json:"secure"`
	Lan      bool   `json:"lan"`
	GamePort int    `json:"gameport"`
	SpecPort int    `json:"specport"`
}

type ServersAtAddressResponse struct {
	Success bool            `json:"success"`
	Servers []AddressServer `json:"servers,omitempty"`
	Message string          `json:"message,omitempty"`
}

// GameServer is a single entry returned by GetServerList.
type GameServer struct {
	Addr       string `json:"addr"`
	GamePort   int    `json:"gameport"`
	SteamID    string `json:"steamid"`
	Name       string `json:"name"`
	AppID      int    `json:"appid"`
	GameDir    string `json:"gamedir"`
	Version    string `json:"version"`
	Product    string `json:"product"`
	Region     int    `json:"region"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"max_players"`
	Bots       int    `json:"bots"`
	Map        string `json:"map"`
	Secure     bool   `json:"secure"`
	Dedicated  bool   `json:"dedicated"`
	OS         string `json:"os"`
	GameType   string `json:"gametype"`
}

type ServerListResponse struct {
	Servers []GameServer `json:"servers,omitempty"`
}

type SteamApi interface {
	FetchServersAtAddress(ctx context.Context, address string) (ServersAtAddressResponse, error)
	FetchServerList(ctx context.Context, apiKey string, address string) (ServerListResponse, error)
}

type SteamClient struct {
	Http    *http.Client
	BaseURL string
}

func MakeSteamClient(baseURL string, timeout time.Duration) SteamClient {
	if baseURL == "" {
		baseURL = DefaultSteamURL
	}
	return SteamClient{
		Http:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c SteamClient) FetchServersAtAddress(ctx context.Context, address string) (ServersAtAddressResponse, error) {
	query := url.Values{}
	query.Set("addr", address)

	var body struct {
		Response ServersAtAddressResponse `json:"response"`
	}
	if err := c.get(ctx, ServersAtAddressPath, query, &body); err != nil {
		return ServersAtAddressResponse{}, NetworkError{Op: "get servers at address", Address: address, Err: err}
	}
	return body.Response, nil
}

func (c SteamClient) FetchServerList(ctx context.Context, apiKey string, address string) (ServerListResponse, error) {
	query := url.Values{}
	query.Set("key", apiKey)
	query.Set("filter", `addr\`+address)

	var body struct {
		Response ServerListResponse `json:"response"`
	}
	if err := c.get(ctx, ServerListPath, query, &body); err != nil {
		return ServerListResponse{}, NetworkError{Op: "get server list", Address: address, Err: err}
	}
	return body.Response, nil
}

func (c SteamClient) get(ctx context.Context, path string, query url.Values, dest any) error {
	trace := ctx.Value(TraceKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.Http.Do(req)
	if err != nil {
		// the url carries the api key, so only keep the underlying cause
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return err
	}
	defer resp.Body.Close()

	slog.Debug("steam responded", "trace", trace, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode/100 != 2 {
		return StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
