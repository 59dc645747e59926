package finder

import (
	"fmt"
	"strings"

	"github.com/streambinder/playlistify/entity"
	"github.com/streambinder/playlistify/greeklish"
)

// conjunction is the operator the catalog
// search syntax uses to require every filter
const conjunction = " AND "

func filter(field, value string) string {
	value = strings.TrimSpace(strings.ReplaceAll(value, `"`, ""))
	if len(value) == 0 {
		return ""
	}
	return fmt.Sprintf(`%s:"%s"`, field, value)
}

func join(filters ...string) string {
	var parts []string
	for _, filter := range filters {
		if len(filter) > 0 {
			parts = append(parts, filter)
		}
	}
	return strings.Join(parts, conjunction)
}

// Query builds the conjunctive query matching both title and artist
func Query(title, artist string) string {
	return join(filter("track", title), filter("artist", artist))
}

// queries returns the queries to issue for the given stage
func queries(stage Stage, record entity.Record) []string {
	switch stage {
	case StageExact:
		return []string{Query(record.Title, record.Artist)}
	case StageLoose:
		return []string{filter("track", record.Title), filter("artist", record.Artist)}
	case StageFallback:
		var (
			transliterated = greeklish.Record(record)
			original       = record.Local
			fallbacks      []string
		)
		if transliterated.Title != record.Title || transliterated.Artist != record.Artist {
			fallbacks = append(fallbacks, Query(transliterated.Title, transliterated.Artist))
		}
		if strings.TrimSpace(original.Title) != record.Title || strings.TrimSpace(original.Artist) != record.Artist {
			fallbacks = append(fallbacks, Query(original.Title, original.Artist))
		}
		return fallbacks
	default:
		return nil
	}
}
