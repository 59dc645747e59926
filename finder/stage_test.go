package finder

import (
	"testing"

	"github.com/streambinder/playlistify/entity"
	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	config := DefaultConfig()
	for _, tc := range []struct {
		stage Stage
		best  float64
		want  Stage
	}{
		{StageExact, 0.9, StageDone},
		{StageExact, 0.85, StageDone},
		{StageExact, 0.5, StageLoose},
		{StageLoose, 0.84, StageFallback},
		{StageLoose, 1, StageDone},
		{StageFallback, 0, StageDone},
		{StageFallback, 1, StageDone},
	} {
		assert.Equal(t, tc.want, next(tc.stage, tc.best, config), "%s at %f", tc.stage, tc.best)
	}
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "exact", StageExact.String())
	assert.Equal(t, "loose", StageLoose.String())
	assert.Equal(t, "fallback", StageFallback.String())
	assert.Equal(t, "tagged", StageTagged.String())
	assert.Equal(t, "unknown", Stage(42).String())
}

func TestQuery(t *testing.T) {
	assert.Equal(t, `track:"Bohemian Rhapsody" AND artist:"Queen"`, Query("Bohemian Rhapsody", "Queen"))
	assert.Equal(t, `track:"Stairway to Heaven"`, Query("Stairway to Heaven", ""))
	assert.Equal(t, `artist:"Queen"`, Query(" ", "Queen"))
	assert.Equal(t, `track:"The Song" AND artist:"Queen"`, Query(`The "Song"`, "Queen"))
	assert.Empty(t, Query("", ""))
}

func TestQueries(t *testing.T) {
	record := entity.Record{
		Title:  "Bohemian Rhapsody",
		Artist: "Queen",
		Local:  entity.LocalTrack{Title: "Bohemian Rhapsody (Live at Wembley)", Artist: "Queen"},
	}
	assert.Equal(t, []string{`track:"Bohemian Rhapsody" AND artist:"Queen"`}, queries(StageExact, record))
	assert.Equal(t, []string{`track:"Bohemian Rhapsody"`, `artist:"Queen"`}, queries(StageLoose, record))
	assert.Equal(t, []string{`track:"Bohemian Rhapsody (Live at Wembley)" AND artist:"Queen"`}, queries(StageFallback, record))
	assert.Nil(t, queries(StageDone, record))

	record.Local.Title = record.Title
	assert.Empty(t, queries(StageFallback, record))
}
