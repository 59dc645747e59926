package spotify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/streambinder/playlistify/config"
	"github.com/streambinder/playlistify/util"
	"github.com/thanhpk/randstr"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

// Processor hands the authorization URL over to the user
type Processor func(url string) error

var scopes = []string{
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopePlaylistModifyPublic,
	spotifyauth.ScopePlaylistModifyPrivate,
}

// BrowserProcessor opens the URL in the default browser,
// printing it too in case no browser could be spawned
func BrowserProcessor(url string) error {
	fmt.Println("Log into Spotify by visiting:", url)
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	util.ErrSuppress(cmd.Start())
	return nil
}

// Authenticate runs the authorization code flow, listening
// for the callback on the configured redirect URI
func Authenticate(ctx context.Context, credentials *config.Credentials, processor Processor) (*Client, error) {
	redirect, err := url.Parse(credentials.RedirectURI)
	if err != nil {
		return nil, err
	}

	var (
		state         = randstr.Hex(16)
		authenticator = spotifyauth.New(
			spotifyauth.WithClientID(credentials.ClientID),
			spotifyauth.WithClientSecret(credentials.ClientSecret),
			spotifyauth.WithRedirectURL(credentials.RedirectURI),
			spotifyauth.WithScopes(scopes...),
		)
		tokens   = make(chan *oauth2.Token, 1)
		failures = make(chan error, 1)
		mux      = http.NewServeMux()
	)
	path := redirect.Path
	if len(path) == 0 {
		path = "/"
	}
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		token, err := authenticator.Token(r.Context(), state, r)
		if err != nil {
			http.Error(w, "authentication failed", http.StatusForbidden)
			notify(failures, err)
			return
		}
		fmt.Fprintln(w, "Authentication completed, you can close this window.")
		notify(tokens, token)
	})

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return nil, err
	}
	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			notify(failures, err)
		}
	}()
	defer server.Close()

	if err := processor(authenticator.AuthURL(state)); err != nil {
		return nil, err
	}

	select {
	case token := <-tokens:
		return session(authenticator, token), nil
	case err := <-failures:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// tokenSource is satisfied by both spotifyauth.Authenticator and oauth2.Config
type tokenSource interface {
	Client(ctx context.Context, token *oauth2.Token) *http.Client
}

// session builds the client out of the obtained token,
// refreshing it for as long as the client is in use
func session(source tokenSource, token *oauth2.Token, options ...spotify.ClientOption) *Client {
	return New(source.Client(context.Background(), token), options...)
}

// only the first event matters, later ones are dropped
func notify[T any](ch chan T, value T) {
	select {
	case ch <- value:
	default:
	}
}
