// Package report summarizes a matching run.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gosimple/slug"
	jsoniter "github.com/json-iterator/go"
	"github.com/streambinder/playlistify/finder"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Entry struct {
	Title   string  `json:"title"`
	Artist  string  `json:"artist,omitempty"`
	Path    string  `json:"path"`
	TrackID string  `json:"track_id,omitempty"`
	Match   string  `json:"match,omitempty"`
	Score   float64 `json:"score"`
	Stage   string  `json:"stage"`
	Errors  int     `json:"errors,omitempty"`
}

type Stage struct {
	Name    string        `json:"name"`
	Elapsed time.Duration `json:"elapsed_ns"`
	Queries int           `json:"queries"`
	Exits   int           `json:"exits"`
}

type Report struct {
	Playlist string  `json:"playlist"`
	DryRun   bool    `json:"dry_run"`
	Found    []Entry `json:"found"`
	NotFound []Entry `json:"not_found"`
	Stages   []Stage `json:"stages"`
}

func New(playlist string, dryRun bool) *Report {
	return &Report{Playlist: playlist, DryRun: dryRun, Found: []Entry{}, NotFound: []Entry{}}
}

// Filename returns a file name suitable
// to dump the report of the given playlist to
func Filename(playlist string) string {
	return slug.Make(playlist) + ".json"
}

func (report *Report) Add(outcome finder.Outcome) {
	entry := Entry{
		Title:  outcome.Local.Title,
		Artist: outcome.Local.Artist,
		Path:   outcome.Local.Path,
		Stage:  outcome.Stage.String(),
		Errors: len(outcome.Errors),
	}
	if outcome.Best != nil {
		entry.Match = outcome.Best.Track.String()
		entry.Score = outcome.Best.Score
	}
	if outcome.Found {
		entry.TrackID = outcome.TrackID()
		report.Found = append(report.Found, entry)
	} else {
		report.NotFound = append(report.NotFound, entry)
	}
}

func (report *Report) Stats(stats finder.Stats) {
	report.Stages = report.Stages[:0]
	stages := append(append([]finder.Stage{}, finder.Stages...), finder.StageTagged)
	for _, stage := range stages {
		stageStats, ok := stats[stage]
		if !ok {
			continue
		}
		report.Stages = append(report.Stages, Stage{stage.String(), stageStats.Elapsed, stageStats.Queries, stageStats.Exits})
	}
}

func (report *Report) Size() int {
	return len(report.Found) + len(report.NotFound)
}

func (report *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "--- Summary ---")
	fmt.Fprintf(w, "Found %d tracks.\n", len(report.Found))
	fmt.Fprintf(w, "%d tracks not found or below confidence threshold.\n", len(report.NotFound))
	if len(report.NotFound) > 0 {
		fmt.Fprintln(w, "Tracks not found:")
		for _, entry := range report.NotFound {
			artist := entry.Artist
			if len(artist) == 0 {
				artist = "Unknown Artist"
			}
			fmt.Fprintf(w, "  - %s - %s\n", entry.Title, artist)
		}
	}
	if len(report.Stages) > 0 {
		fmt.Fprintln(w, "Stages:")
		for _, stage := range report.Stages {
			fmt.Fprintf(w, "  %-8s %4d queries %4d exits %s\n",
				stage.Name, stage.Queries, stage.Exits, stage.Elapsed.Round(time.Millisecond))
		}
	}
}

func (report *Report) Dump(path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
