// Package scorer measures how closely a catalog track
// resembles a normalized local record.
package scorer

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/streambinder/playlistify/entity"
	"golang.org/x/text/cases"
)

// Weights balances title and artist similarity:
// titles are the stronger signal, as catalog artist credits
// often carry featured artists missing from local tags
type Weights struct {
	Title  float64
	Artist float64
}

var DefaultWeights = Weights{Title: 0.6, Artist: 0.4}

// Ratio is the case-insensitive edit-distance similarity
// of two strings, ranging from 0 (nothing in common) to 1 (equal)
func Ratio(a, b string) float64 {
	fold := cases.Fold()
	a, b = fold.String(a), fold.String(b)
	length := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > length {
		length = n
	}
	if length == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(length)
}

// ArtistRatio compares the local artist against each
// artist of the candidate, keeping the best fit
func ArtistRatio(artist string, artists []string) float64 {
	var best float64
	for _, candidate := range artists {
		if ratio := Ratio(artist, candidate); ratio > best {
			best = ratio
		}
	}
	return best
}

func (weights Weights) Score(record entity.Record, track entity.Track) float64 {
	title := Ratio(record.Title, track.Title)
	// no artist to compare against: the title is all there is
	if len(record.Artist) == 0 || weights.Artist <= 0 {
		return title
	}
	if weights.Title <= 0 {
		return ArtistRatio(record.Artist, track.Artists)
	}
	artist := ArtistRatio(record.Artist, track.Artists)
	return (weights.Title*title + weights.Artist*artist) / (weights.Title + weights.Artist)
}

// Score uses the default weights
func Score(record entity.Record, track entity.Track) float64 {
	return DefaultWeights.Score(record, track)
}
