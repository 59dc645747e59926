package id3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "track.mp3")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
	return path
}

func TestOpenUntagged(t *testing.T) {
	file, err := Open(fixture(t), id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer file.Close()

	assert.Empty(t, file.Title())
	assert.Empty(t, file.Artist())
	assert.Empty(t, file.SpotifyID())
}

func TestRoundTrip(t *testing.T) {
	path := fixture(t)
	file, err := Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	file.SetDefaultEncoding(id3v2.EncodingUTF8)
	file.SetTitle(" Συννεφιασμένη Κυριακή ")
	file.SetArtist("Βασίλης Τσιτσάνης")
	file.SetAlbum("Best Of")
	file.SetSpotifyID("6rqhFgbbKwnb9MLmUQDhG6")
	require.NoError(t, file.Save())
	require.NoError(t, file.Close())

	file, err = Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, "Συννεφιασμένη Κυριακή", file.Title())
	assert.Equal(t, "Βασίλης Τσιτσάνης", file.Artist())
	assert.Equal(t, "Best Of", file.Album())
	assert.Equal(t, "6rqhFgbbKwnb9MLmUQDhG6", file.SpotifyID())
}
