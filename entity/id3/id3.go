package id3

import (
	"strings"

	"github.com/bogem/id3v2/v2"
)

const frameSpotifyID = "SpotifyID"

// File wraps an ID3v2 tag exposing the subset of frames
// relevant to identify a song against the catalog
type File struct {
	*id3v2.Tag
}

func Open(path string, options id3v2.Options) (*File, error) {
	tag, err := id3v2.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &File{tag}, nil
}

func (file *File) Title() string {
	return strings.TrimSpace(file.Tag.Title())
}

func (file *File) Artist() string {
	return strings.TrimSpace(file.Tag.Artist())
}

func (file *File) Album() string {
	return strings.TrimSpace(file.Tag.Album())
}

func (file *File) SpotifyID() string {
	return file.userDefinedText(frameSpotifyID)
}

func (file *File) SetSpotifyID(id string) {
	file.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: frameSpotifyID,
		Value:       id,
	})
}

func (file *File) userDefinedText(description string) string {
	for _, frame := range file.GetFrames(file.CommonID("User defined text information frame")) {
		udtf, ok := frame.(id3v2.UserDefinedTextFrame)
		if ok && udtf.Description == description {
			return strings.TrimSpace(udtf.Value)
		}
	}
	return ""
}
