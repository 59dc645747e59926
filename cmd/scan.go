package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/streambinder/playlistify/greeklish"
	"github.com/streambinder/playlistify/library"
	"github.com/streambinder/playlistify/normalizer"
)

func init() {
	cmdRoot.AddCommand(cmdScan())
}

func cmdScan() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <folder>",
		Short: "Show the search keys derived from a local folder, without searching",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return scanDirectory(args[0], cmd.OutOrStdout())
		},
	}
}

func scanDirectory(dir string, out io.Writer) error {
	paths, err := library.Scan(dir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}

	for _, path := range paths {
		var (
			track  = library.Read(path)
			record = normalizer.Normalize(track)
		)
		fmt.Fprintf(out, "%s\n  tags:   %s\n  search: %s - %s\n", path, track, record.Title, record.Artist)
		if greeklish.IsGreek(record.Title) || greeklish.IsGreek(record.Artist) {
			transliterated := greeklish.Record(record)
			fmt.Fprintf(out, "  latin:  %s - %s\n", transliterated.Title, transliterated.Artist)
		}
		if len(track.SpotifyID) > 0 {
			fmt.Fprintf(out, "  id:     %s\n", track.SpotifyID)
		}
	}
	fmt.Fprintf(out, "%d audio files\n", len(paths))
	return nil
}
