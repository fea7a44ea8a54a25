package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"

	"golang.org/x/oauth2"

	"github.com/PixPMusic/gopher-midihub/internal/config"
)

var spotifyEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.spotify.com/authorize",
	TokenURL: "https://accounts.spotify.com/api/token",
}

const callbackAddr = ":12345"
const redirectURL = "http://localhost:12345/callback"

// runConfigure bootstraps a Spotify refresh token: it opens a browser at
// Spotify's authorization page, runs a local HTTP server to catch the
// redirect's `code` query parameter, exchanges it for a token pair, and
// stores the refresh token in the on-disk config. Grounded on
// original_source/spotify/authorization.rs's spawn_authorization_browser +
// spawn_authorization_server + request_token, replacing warp's local
// server with net/http and the manual form POST with oauth2.Config.Exchange,
// the idiomatic Go equivalent for an authorization-code grant.
func runConfigure(clientID, clientSecret string) error {
	oauthConfig := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     spotifyEndpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{"user-modify-playback-state", "user-read-playback-state"},
	}

	codeCh := make(chan string, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			fmt.Fprint(w, "An error occurred, you may need to go through the authorization flow again.")
		} else {
			fmt.Fprint(w, "You can now close this tab.")
		}
		codeCh <- code
	})
	srv := &http.Server{Addr: callbackAddr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[cli] callback server stopped: %v", err)
		}
	}()
	defer srv.Close()

	authURL := oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Printf("Opening browser for authorization: %s\n", authURL)
	openBrowser(authURL)

	code := <-codeCh
	if code == "" {
		return fmt.Errorf("cli: authorization was denied or canceled")
	}

	token, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		return fmt.Errorf("cli: could not exchange authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		return fmt.Errorf("cli: spotify did not return a refresh token")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cli: could not load config: %w", err)
	}
	cfg.Spotify.ClientID = clientID
	cfg.Spotify.ClientSecret = clientSecret
	cfg.Spotify.RefreshToken = token.RefreshToken
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("cli: could not save config: %w", err)
	}

	fmt.Println("Spotify refresh token saved to config.")
	return nil
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		fmt.Printf("could not open a browser automatically; visit: %s\n", url)
	}
}
