// Package finder looks local tracks up in the catalog, issuing
// progressively looser queries until a good enough match shows up.
package finder

import (
	"context"
	"fmt"
	"time"

	"github.com/streambinder/playlistify/entity"
	"github.com/streambinder/playlistify/greeklish"
	"github.com/streambinder/playlistify/normalizer"
	"github.com/streambinder/playlistify/scorer"
)

// Searcher is the catalog search capability
type Searcher interface {
	Search(ctx context.Context, query string) ([]entity.Track, error)
}

type Config struct {
	// HighConfidence is the score at which searching stops right away
	HighConfidence float64
	// Acceptance is the score a match must exceed to be considered found
	Acceptance float64
	Weights    scorer.Weights
}

func DefaultConfig() Config {
	return Config{
		HighConfidence: 0.85,
		Acceptance:     0.6,
		Weights:        scorer.DefaultWeights,
	}
}

type Match struct {
	Track entity.Track
	Score float64
}

// Outcome is the result of looking a single local track up
type Outcome struct {
	Local   entity.LocalTrack
	Record  entity.Record
	Best    *Match
	Found   bool
	Stage   Stage // last stage run
	Queries []string
	Errors  []error
}

func (outcome Outcome) TrackID() string {
	if !outcome.Found || outcome.Best == nil {
		return ""
	}
	return outcome.Best.Track.ID
}

func (outcome Outcome) score() float64 {
	if outcome.Best == nil {
		return 0
	}
	return outcome.Best.Score
}

type Finder struct {
	searcher Searcher
	config   Config
	stats    Stats
}

func New(searcher Searcher, config Config) *Finder {
	return &Finder{searcher, config, make(Stats)}
}

// Stats returns the statistics collected so far
func (finder *Finder) Stats() Stats {
	return finder.stats.copy()
}

func (finder *Finder) Find(ctx context.Context, local entity.LocalTrack) Outcome {
	var (
		record  = normalizer.Normalize(local)
		outcome = Outcome{Local: local, Record: record, Stage: StageExact}
		views   = []entity.Record{record}
		issued  = make(map[string]bool)
	)

	if len(local.SpotifyID) > 0 {
		outcome.Best = &Match{entity.Track{ID: local.SpotifyID, Title: local.Title, Artists: []string{local.Artist}}, 1}
		outcome.Found = true
		outcome.Stage = StageTagged
		finder.stats.exit(StageTagged)
		return outcome
	}

	// Greek records also get compared against
	// their transliteration, to value Latin spelled entries
	if transliterated := greeklish.Record(record); transliterated != record {
		views = append(views, transliterated)
	}

	for stage := StageExact; stage != StageDone; {
		start := time.Now()
		for _, query := range queries(stage, record) {
			if len(query) == 0 || issued[query] {
				continue
			}
			issued[query] = true
			outcome.Queries = append(outcome.Queries, query)
			finder.stats.query(stage)

			tracks, err := finder.searcher.Search(ctx, query)
			if err != nil {
				outcome.Errors = append(outcome.Errors, fmt.Errorf("search %s: %w", query, err))
				continue
			}
			finder.rate(&outcome, views, tracks)
			if outcome.score() >= finder.config.HighConfidence {
				break
			}
		}
		finder.stats.elapse(stage, time.Since(start))

		outcome.Stage = stage
		stage = next(stage, outcome.score(), finder.config)
		if stage == StageDone && outcome.score() >= finder.config.HighConfidence {
			finder.stats.exit(outcome.Stage)
		}
	}

	outcome.Found = outcome.Best != nil && outcome.Best.Score > finder.config.Acceptance
	return outcome
}

// rate scores every track, keeping the best one in the outcome:
// earlier results win ties
func (finder *Finder) rate(outcome *Outcome, views []entity.Record, tracks []entity.Track) {
	for _, track := range tracks {
		var score float64
		for _, view := range views {
			if viewScore := finder.config.Weights.Score(view, track); viewScore > score {
				score = viewScore
			}
		}
		if outcome.Best == nil || score > outcome.Best.Score {
			outcome.Best = &Match{track, score}
		}
	}
}
