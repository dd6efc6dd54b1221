package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const MaxConcurrentLookups = 4

// Reporter looks up every configured address on steam and renders one section per address.
type Reporter struct {
	Steam SteamApi
	Delay time.Duration
}

func MakeReporter(steam SteamApi, delay time.Duration) Reporter {
	return Reporter{Steam: steam, Delay: delay}
}

func (r Reporter) FormatQuery(ctx context.Context, config GuildConfig) string {
	return r.collect(ctx, config.Addresses(), "Server details for %s:", r.queryBody)
}

func (r Reporter) FormatStatus(ctx context.Context, config GuildConfig) string {
	return r.collect(ctx, config.Addresses(), "Status for %s:", func(ctx context.Context, address string) string {
		return r.statusBody(ctx, config.SteamAPIKey, address)
	})
}

func (r Reporter) queryBody(ctx context.Context, address string) string {
	resp, err := r.Steam.FetchServersAtAddress(ctx, address)
	if err != nil {
		return fetchErrorLine(ctx, address, err)
	}
	// a rejected lookup still shows the payload so steam's message reaches the user
	if resp.Success && len(resp.Servers) == 0 {
		return noServerLine(address)
	}

	payload, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fetchErrorLine(ctx, address, err)
	}
	return codeBlock(string(payload), "json")
}

func (r Reporter) statusBody(ctx context.Context, apiKey string, address string) string {
	resp, err := r.Steam.FetchServerList(ctx, apiKey, address)
	if err != nil {
		return fetchErrorLine(ctx, address, err)
	}
	if len(resp.Servers) == 0 {
		return noServerLine(address)
	}

	server := resp.Servers[0]
	lines := []string{
		field("Name", server.Name),
		field("Map", server.Map),
		field("Players", strconv.Itoa(server.Players)+"/"+strconv.Itoa(server.MaxPlayers)),
		field("Connect", "steam://connect/"+address),
	}
	return strings.Join(lines, "\n")
}

// collect runs lookup once per address and joins the sections, each under its own header, in address order.
// Lookups are spaced by the reporter delay; a failed lookup only fills its own section.
func (r Reporter) collect(ctx context.Context, addresses []string, headerFormat string, lookup func(context.Context, string) string) string {
	sections := make([]string, len(addresses))

	limit := rate.Inf
	if r.Delay > 0 {
		limit = rate.Every(r.Delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	var eg errgroup.Group
	eg.SetLimit(MaxConcurrentLookups)

	for i, address := range addresses {
		i, address := i, address
		eg.Go(func() error {
			header := bold(fmt.Sprintf(headerFormat, address))
			if err := limiter.Wait(ctx); err != nil {
				sections[i] = header + "\n" + fetchErrorLine(ctx, address, err)
				return nil
			}
			sections[i] = header + "\n" + lookup(ctx, address)
			return nil
		})
	}
	_ = eg.Wait()

	return strings.Join(sections, "\n\n")
}

func fetchErrorLine(ctx context.Context, address string, err error) string {
	slog.Warn("failed to fetch server details", "trace", ctx.Value(TraceKey), "address", address, "err", err)
	return fmt.Sprintf("error fetching details for %s: %v", address, err)
}

func noServerLine(address string) string {
	return fmt.Sprintf("no server found for %s, the server may be down, sorry!", address)
}
