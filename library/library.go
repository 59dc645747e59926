// Package library discovers audio files in a local
// folder and extracts their metadata.
package library

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/streambinder/playlistify/entity"
	"github.com/streambinder/playlistify/entity/id3"
)

var ErrNoAudio = errors.New("no audio files found")

var extensions = map[string]bool{
	".mp3": true, ".m4a": true, ".m4b": true, ".m4p": true, ".mp4": true, ".flac": true,
	".ogg": true, ".oga": true, ".opus": true, ".wav": true, ".wave": true, ".aif": true,
	".aiff": true, ".aifc": true, ".wma": true, ".asf": true, ".ape": true, ".mpc": true,
	".mp+": true, ".wv": true, ".tta": true,
}

func IsAudio(path string) bool {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Scan walks the given folder recursively, returning
// the audio files found, in lexical order
func Scan(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "scan", Path: root, Err: errors.New("not a directory")}
	}

	var paths []string
	if err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && IsAudio(path) {
			paths = append(paths, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, ErrNoAudio
	}
	return paths, nil
}

// Read extracts the metadata of the given audio file:
// files whose tags cannot be read are titled after their name
func Read(path string) entity.LocalTrack {
	track := entity.LocalTrack{Path: path}
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		readID3(&track)
	} else {
		readTag(&track)
	}
	if len(track.Title) == 0 {
		track.Title = entity.Stem(path)
	}
	return track
}

func readID3(track *entity.LocalTrack) {
	file, err := id3.Open(track.Path, id3v2.Options{Parse: true})
	if err != nil {
		// not necessarily a plain ID3 file
		readTag(track)
		return
	}
	defer file.Close()

	track.Title = file.Title()
	track.Artist = file.Artist()
	track.Album = file.Album()
	track.SpotifyID = file.SpotifyID()
}

func readTag(track *entity.LocalTrack) {
	file, err := os.Open(track.Path)
	if err != nil {
		return
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return
	}
	track.Title = strings.TrimSpace(metadata.Title())
	track.Artist = strings.TrimSpace(metadata.Artist())
	track.Album = strings.TrimSpace(metadata.Album())
}
