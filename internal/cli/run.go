package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/PixPMusic/gopher-midihub/internal/app"
	"github.com/PixPMusic/gopher-midihub/internal/app/forward"
	"github.com/PixPMusic/gopher-midihub/internal/app/paint"
	"github.com/PixPMusic/gopher-midihub/internal/app/selection"
	"github.com/PixPMusic/gopher-midihub/internal/app/spotify"
	"github.com/PixPMusic/gopher-midihub/internal/app/youtube"
	"github.com/PixPMusic/gopher-midihub/internal/config"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
	"github.com/PixPMusic/gopher-midihub/internal/router"
	"github.com/PixPMusic/gopher-midihub/internal/server"
)

// runRun loads config, wires the configured apps under Selection, and
// drives the router until SIGINT, matching original_source/main.rs's
// top-level ^C/SIGINT handling (here via signal.NotifyContext, the
// idiomatic Go replacement for an Arc<AtomicBool> term flag).
func runRun() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cli: could not load config: %w", err)
	}

	deviceName, kind, err := primaryDevice(cfg)
	if err != nil {
		return err
	}
	features := devicekind.Get(kind)

	apps, err := buildApps(cfg, features)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		return fmt.Errorf("cli: no apps configured under apps.selection.apps")
	}

	sel := selection.New(apps, features, features)

	channel := server.NewChannel(server.DefaultCapacity)
	mux := http.NewServeMux()
	channel.Serve(mux, "public")
	go func() {
		log.Printf("[cli] http server listening on :54321")
		if err := http.ListenAndServe(":54321", mux); err != nil {
			log.Printf("[cli] http server stopped: %v", err)
		}
	}()

	r := router.New(deviceName, deviceName, sel, channel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	fmt.Println("Press ^C to terminate the program")
	r.Run(ctx)

	fmt.Println("Completed successfully. Bye!")
	return nil
}

// primaryDevice picks the single configured device this router cycle binds
// to. Multiple concurrent devices are out of scope; if more than one is
// configured, the lowest id wins deterministically and the rest are logged
// and ignored.
func primaryDevice(cfg *config.Config) (name string, kind devicekind.Kind, err error) {
	if len(cfg.Devices) == 0 {
		return "", "", fmt.Errorf("cli: no device configured under devices.<id>")
	}
	ids := make([]string, 0, len(cfg.Devices))
	for id := range cfg.Devices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) > 1 {
		log.Printf("[cli] multiple devices configured, using %q and ignoring the rest", ids[0])
	}
	d := cfg.Devices[ids[0]]
	return d.Name, d.Type, nil
}

func buildApps(cfg *config.Config, features devicekind.Features) ([]app.App, error) {
	var apps []app.App
	for _, name := range cfg.Apps.Selection.Apps {
		switch name {
		case forward.Name:
			apps = append(apps, forward.New())
		case paint.Name:
			apps = append(apps, paint.New(features, features))
		case spotify.Name:
			apps = append(apps, spotify.New(spotify.Config{
				PlaylistID:   cfg.Spotify.PlaylistID,
				ClientID:     cfg.Spotify.ClientID,
				ClientSecret: cfg.Spotify.ClientSecret,
				RefreshToken: cfg.Spotify.RefreshToken,
			}, features, features))
		case youtube.Name:
			apps = append(apps, youtube.New(youtube.Config{
				APIKey:     cfg.YouTube.APIKey,
				PlaylistID: cfg.YouTube.PlaylistID,
			}, features, features))
		default:
			return nil, fmt.Errorf("cli: unknown app %q in apps.selection.apps", name)
		}
	}
	return apps, nil
}
