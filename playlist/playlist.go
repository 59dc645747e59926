// Package playlist collects matched tracks and pushes
// them to a remote playlist.
package playlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/streambinder/playlistify/util"
)

// BatchLimit is the maximum amount of tracks
// the catalog accepts in a single addition request
const BatchLimit = 100

var ErrNoTracks = errors.New("no tracks to add")

// Client is the playlist mutation capability
type Client interface {
	// FindPlaylist looks for a playlist owned by the user with the given name
	FindPlaylist(ctx context.Context, name string) (id string, found bool, err error)
	CreatePlaylist(ctx context.Context, name string, public bool) (id string, err error)
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error
}

type Assembler struct {
	client Client
	dryRun bool
	tracks []string
}

func New(client Client, dryRun bool) *Assembler {
	return &Assembler{client: client, dryRun: dryRun}
}

// Add appends a track, which will be
// submitted in the same order it's been added
func (assembler *Assembler) Add(trackID string) {
	assembler.tracks = append(assembler.tracks, trackID)
}

func (assembler *Assembler) Tracks() []string {
	return append([]string(nil), assembler.tracks...)
}

func (assembler *Assembler) DryRun() bool {
	return assembler.dryRun
}

// Submit creates the named playlist (or reuses the one
// already existing) and adds every collected track to it,
// returning its identifier: in dry run mode nothing is done
func (assembler *Assembler) Submit(ctx context.Context, name string, public bool) (string, error) {
	if assembler.dryRun {
		return "", nil
	}
	if len(assembler.tracks) == 0 {
		return "", ErrNoTracks
	}

	id, found, err := assembler.client.FindPlaylist(ctx, name)
	if err != nil {
		return "", fmt.Errorf("looking up playlist %s: %w", name, err)
	}
	if !found {
		if id, err = assembler.client.CreatePlaylist(ctx, name, public); err != nil {
			return "", fmt.Errorf("creating playlist %s: %w", name, err)
		}
	}

	for index, batch := range util.Chunks(assembler.tracks, BatchLimit) {
		if err := assembler.client.AddTracks(ctx, id, batch); err != nil {
			return id, fmt.Errorf("adding tracks batch %d to playlist %s: %w", index+1, name, err)
		}
	}
	return id, nil
}
