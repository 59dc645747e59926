package spotify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"
)

type upstream struct {
	queries []string
	created []string
	added   [][]string
}

func (u *upstream) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		u.queries = append(u.queries, r.URL.Query().Get("q"))
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		io.WriteString(w, `{"tracks":{"items":[
			{"id":"rhapsody","name":"Bohemian Rhapsody","artists":[{"name":"Queen"}],"album":{"name":"A Night at the Opera"}},
			{"id":"pressure","name":"Under Pressure","artists":[{"name":"Queen"},{"name":"David Bowie"}],"album":{"name":"Hot Space"}}
		]}}`)
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"freddie"}`)
	})
	mux.HandleFunc("/me/playlists", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"items":[
			{"id":"followed","name":"Road Trip","owner":{"id":"brian"}},
			{"id":"owned","name":"Road Trip","owner":{"id":"freddie"}}
		],"next":""}`)
	})
	mux.HandleFunc("/users/freddie/playlists", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		u.created = append(u.created, body.Name)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"created","name":"`+body.Name+`"}`)
	})
	mux.HandleFunc("/playlists/owned/tracks", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URIs []string `json:"uris"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		u.added = append(u.added, body.URIs)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"snapshot_id":"snapshot"}`)
	})
	return mux
}

func fixture(t *testing.T) (*Client, *upstream) {
	u := &upstream{}
	server := httptest.NewServer(u.handler(t))
	t.Cleanup(server.Close)
	client := New(server.Client(), spotify.WithBaseURL(server.URL+"/"))
	client.SetLimit(5)
	return client, u
}

func TestSearch(t *testing.T) {
	client, u := fixture(t)
	tracks, err := client.Search(context.Background(), `track:"Bohemian Rhapsody" AND artist:"Queen"`)
	require.NoError(t, err)
	assert.Equal(t, []string{`track:"Bohemian Rhapsody" AND artist:"Queen"`}, u.queries)
	require.Len(t, tracks, 2)
	assert.Equal(t, "rhapsody", tracks[0].ID)
	assert.Equal(t, "Bohemian Rhapsody", tracks[0].Title)
	assert.Equal(t, []string{"Queen"}, tracks[0].Artists)
	assert.Equal(t, "A Night at the Opera", tracks[0].Album)
	assert.Equal(t, []string{"Queen", "David Bowie"}, tracks[1].Artists)
}

func TestFindPlaylist(t *testing.T) {
	client, _ := fixture(t)
	id, found, err := client.FindPlaylist(context.Background(), "Road Trip")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "owned", id)

	_, found, err = client.FindPlaylist(context.Background(), "Workout")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreatePlaylist(t *testing.T) {
	client, u := fixture(t)
	id, err := client.CreatePlaylist(context.Background(), "Workout", false)
	require.NoError(t, err)
	assert.Equal(t, "created", id)
	assert.Equal(t, []string{"Workout"}, u.created)
}

func TestAddTracks(t *testing.T) {
	client, u := fixture(t)
	require.NoError(t, client.AddTracks(context.Background(), "owned", []string{"rhapsody", "pressure"}))
	assert.Equal(t, [][]string{{"spotify:track:rhapsody", "spotify:track:pressure"}}, u.added)
}
