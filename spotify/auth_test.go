package spotify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

func TestSessionRefreshesExpiredToken(t *testing.T) {
	var authorizations []string
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		authorizations = append(authorizations, r.Header.Get("Authorization"))
		io.WriteString(w, `{"tracks":{"items":[]}}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	// the authentication routine is long gone
	// by the time the token expires
	client := session(&oauth2.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: server.URL + "/token"},
	}, &oauth2.Token{
		AccessToken:  "stale",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(-time.Hour),
	}, spotify.WithBaseURL(server.URL+"/"))

	_, err := client.Search(context.Background(), `track:"Song"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer fresh"}, authorizations)
}
