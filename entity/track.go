package entity

import (
	"fmt"
	"path/filepath"
	"strings"
)

const unknownArtist = "Unknown Artist"

// LocalTrack is what could be learnt about
// an audio file sitting in the scanned folder
type LocalTrack struct {
	Title     string
	Artist    string
	Album     string
	Path      string
	SpotifyID string // set only if the file has been tagged upstream already
}

// Record is the normalized view of a LocalTrack
// that is actually used to build search queries
type Record struct {
	Title  string
	Artist string
	Album  string
	Local  LocalTrack
}

// Track is a catalog entry returned by a search
type Track struct {
	ID      string
	Title   string
	Artists []string
	Album   string
}

// Stem returns the file name of the given path
// without its extension, used as the title of files
// that lack an embedded one
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (track LocalTrack) String() string {
	var (
		title  = track.Title
		artist = track.Artist
	)
	if len(title) == 0 {
		title = filepath.Base(track.Path)
	}
	if len(artist) == 0 {
		artist = unknownArtist
	}
	return fmt.Sprintf("%s - %s", title, artist)
}

func (track Track) Artist() string {
	if len(track.Artists) == 0 {
		return unknownArtist
	}
	return strings.Join(track.Artists, ", ")
}

func (track Track) String() string {
	return fmt.Sprintf("%s - %s", track.Title, track.Artist())
}
