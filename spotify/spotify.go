package spotify

import (
	"context"
	"errors"
	"net/http"

	"github.com/streambinder/playlistify/entity"
	"github.com/zmb3/spotify/v2"
)

// DefaultLimit is the amount of results asked per search
const DefaultLimit = 10

type Client struct {
	*spotify.Client
	limit int
	user  string
}

func New(httpClient *http.Client, options ...spotify.ClientOption) *Client {
	return &Client{Client: spotify.New(httpClient, options...), limit: DefaultLimit}
}

// SetLimit changes the amount of results asked per search
func (client *Client) SetLimit(limit int) {
	if limit > 0 {
		client.limit = limit
	}
}

func (client *Client) Search(ctx context.Context, query string) ([]entity.Track, error) {
	result, err := client.Client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(client.limit))
	if err != nil {
		return nil, err
	}

	var tracks []entity.Track
	if result.Tracks != nil {
		for _, track := range result.Tracks.Tracks {
			tracks = append(tracks, trackEntity(track))
		}
	}
	return tracks, nil
}

func (client *Client) FindPlaylist(ctx context.Context, name string) (string, bool, error) {
	user, err := client.userID(ctx)
	if err != nil {
		return "", false, err
	}

	page, err := client.CurrentUsersPlaylists(ctx, spotify.Limit(50))
	if err != nil {
		return "", false, err
	}
	for {
		for _, playlist := range page.Playlists {
			if playlist.Name == name && playlist.Owner.ID == user {
				return playlist.ID.String(), true, nil
			}
		}
		if err := client.NextPage(ctx, page); errors.Is(err, spotify.ErrNoMorePages) {
			return "", false, nil
		} else if err != nil {
			return "", false, err
		}
	}
}

func (client *Client) CreatePlaylist(ctx context.Context, name string, public bool) (string, error) {
	user, err := client.userID(ctx)
	if err != nil {
		return "", err
	}

	playlist, err := client.CreatePlaylistForUser(ctx, user, name, "", public, false)
	if err != nil {
		return "", err
	}
	return playlist.ID.String(), nil
}

func (client *Client) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	ids := make([]spotify.ID, 0, len(trackIDs))
	for _, id := range trackIDs {
		ids = append(ids, spotify.ID(id))
	}
	_, err := client.AddTracksToPlaylist(ctx, spotify.ID(playlistID), ids...)
	return err
}

func (client *Client) userID(ctx context.Context) (string, error) {
	if len(client.user) > 0 {
		return client.user, nil
	}
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	client.user = user.ID
	return client.user, nil
}

func trackEntity(track spotify.FullTrack) entity.Track {
	artists := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}
	return entity.Track{
		ID:      track.ID.String(),
		Title:   track.Name,
		Artists: artists,
		Album:   track.Album.Name,
	}
}
