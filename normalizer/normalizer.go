// Package normalizer cleans the metadata read from local files
// so that it can be used as a search key against the catalog.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/streambinder/playlistify/entity"
	"golang.org/x/text/unicode/norm"
)

// words which, found inside a bracketed annotation or leading
// a dashed suffix, denote the variant of a song rather than the song
const vocabulary = `live|remix|remixed|remaster|remastered|acoustic|version|edit|mix|demo|mono|stereo|` +
	`radio|extended|official|video|audio|lyric|lyrics|explicit|instrumental|bonus|deluxe|hd|hq|` +
	`feat|ft|featuring|4k|1080p|720p`

var (
	annotation = regexp.MustCompile(
		`(?i)\s*[-–—:]?\s*[(\[](?:[^()\[\]]*\b(?:` + vocabulary + `)\b[^()\[\]]*|\s*\d{4}\s*)[)\]]`,
	)
	suffix = regexp.MustCompile(
		`(?i)\s+[-–—]\s+(?:\d{4}\s+)?(?:` + vocabulary + `)\b.*$`,
	)
	// left behind by nested annotations, e.g. "Song ((Live))"
	empty  = regexp.MustCompile(`\s*[(\[]\s*[)\]]`)
	spaces = regexp.MustCompile(`\s+`)
)

// Normalize derives the search record out of a local track
func Normalize(track entity.LocalTrack) entity.Record {
	return entity.Record{
		Title:  Title(track.Title),
		Artist: Artist(track.Artist),
		Album:  strings.TrimSpace(compose(track.Album)),
		Local:  track,
	}
}

// Title strips variant annotations off a song title, e.g.
// > Bohemian Rhapsody (Live at Wembley)
// > Bohemian Rhapsody
// It never returns an empty string for a non-blank title
func Title(title string) string {
	original := collapse(compose(title))
	cleaned := original
	for {
		next := annotation.ReplaceAllString(cleaned, "")
		next = collapse(empty.ReplaceAllString(suffix.ReplaceAllString(next, ""), ""))
		if next == cleaned {
			break
		}
		cleaned = next
	}
	if len(cleaned) == 0 {
		return original
	}
	return cleaned
}

func Artist(artist string) string {
	return strings.TrimSpace(compose(artist))
}

// tags are often stored decomposed (NFD) while
// the catalog returns composed text
func compose(value string) string {
	return norm.NFC.String(value)
}

func collapse(value string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(value, " "))
}
