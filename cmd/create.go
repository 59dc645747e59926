package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/arunsworld/nursery"
	"github.com/spf13/cobra"
	"github.com/streambinder/playlistify/config"
	"github.com/streambinder/playlistify/entity"
	"github.com/streambinder/playlistify/finder"
	"github.com/streambinder/playlistify/library"
	"github.com/streambinder/playlistify/playlist"
	"github.com/streambinder/playlistify/report"
	"github.com/streambinder/playlistify/scorer"
	"github.com/streambinder/playlistify/spotify"
	"github.com/streambinder/playlistify/util"
)

// value of --report when given without a path
const reportAuto = "auto"

// processor hands the authorization URL over to the user
var processor spotify.Processor = spotify.BrowserProcessor

type options struct {
	folder   string
	name     string
	public   bool
	dryRun   bool
	limit    int
	report   string
	matching finder.Config
}

func cmdCreate() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "playlistify <folder>",
		Short:         "Create a Spotify playlist out of a folder of audio files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(cmd, args[0])
			if err != nil {
				return err
			}

			// nothing to authenticate for if there is no audio
			paths, err := library.Scan(opts.folder)
			if err != nil {
				return fmt.Errorf("scanning %s: %w", opts.folder, err)
			}

			var (
				tracks []entity.LocalTrack
				client *spotify.Client
			)
			if err := nursery.RunConcurrently(
				routineIndex(paths, &tracks),
				routineAuth(opts.limit, &client),
			); err != nil {
				return err
			}

			_, err = synchronize(cmd.Context(), opts, tracks, client, client, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringP("playlist-name", "n", "", "Playlist name (defaults to the folder name)")
	cmd.Flags().Bool("private", false, "Make the playlist private")
	cmd.Flags().Bool("dry-run", false, "Scan and search without creating the playlist")
	cmd.Flags().Float64("high-confidence", finder.DefaultConfig().HighConfidence, "Score at which searching stops right away")
	cmd.Flags().Float64("acceptance", finder.DefaultConfig().Acceptance, "Score a match must exceed to be accepted")
	cmd.Flags().Float64("title-weight", scorer.DefaultWeights.Title, "Weight of title similarity, artist gets the rest")
	cmd.Flags().IntP("limit", "l", spotify.DefaultLimit, "Results fetched per search query")
	cmd.Flags().String("report", "", "Dump a JSON report to the given path")
	cmd.Flags().Lookup("report").NoOptDefVal = reportAuto
	return cmd
}

func parseOptions(cmd *cobra.Command, folder string) (options, error) {
	var (
		opts = options{
			folder:   folder,
			name:     util.ErrWrap("")(cmd.Flags().GetString("playlist-name")),
			public:   !util.ErrWrap(false)(cmd.Flags().GetBool("private")),
			dryRun:   util.ErrWrap(false)(cmd.Flags().GetBool("dry-run")),
			limit:    util.ErrWrap(spotify.DefaultLimit)(cmd.Flags().GetInt("limit")),
			report:   util.ErrWrap("")(cmd.Flags().GetString("report")),
			matching: finder.DefaultConfig(),
		}
		titleWeight = util.ErrWrap(scorer.DefaultWeights.Title)(cmd.Flags().GetFloat64("title-weight"))
	)
	opts.matching.HighConfidence = util.ErrWrap(opts.matching.HighConfidence)(cmd.Flags().GetFloat64("high-confidence"))
	opts.matching.Acceptance = util.ErrWrap(opts.matching.Acceptance)(cmd.Flags().GetFloat64("acceptance"))
	opts.matching.Weights = scorer.Weights{Title: titleWeight, Artist: 1 - titleWeight}

	for flag, value := range map[string]float64{
		"high-confidence": opts.matching.HighConfidence,
		"acceptance":      opts.matching.Acceptance,
		"title-weight":    titleWeight,
	} {
		if value < 0 || value > 1 {
			return opts, fmt.Errorf("--%s must be within 0 and 1, got %s", flag, strconv.FormatFloat(value, 'f', -1, 64))
		}
	}

	if len(opts.name) == 0 {
		if abs, err := filepath.Abs(folder); err == nil {
			opts.name = filepath.Base(abs)
		} else {
			opts.name = filepath.Base(filepath.Clean(folder))
		}
	}
	if opts.report == reportAuto {
		opts.report = report.Filename(opts.name)
	}
	return opts, nil
}

// indexer reads the tags of every audio file found
func routineIndex(paths []string, tracks *[]entity.LocalTrack) func(context.Context, chan error) {
	return func(_ context.Context, _ chan error) {
		for _, path := range paths {
			tui.Lot("index").Print(filepath.Base(path))
			*tracks = append(*tracks, library.Read(path))
		}
		tui.Lot("index").Close(strconv.Itoa(len(paths)) + " files")
	}
}

func routineAuth(limit int, client **spotify.Client) func(context.Context, chan error) {
	return func(ctx context.Context, ch chan error) {
		tui.Lot("auth").Printf("authenticating")
		credentials, err := config.Load()
		if err != nil {
			tui.Lot("auth").Wipe()
			tui.AnchorPrintf("configuration failed: %s", err)
			ch <- err
			return
		}

		authenticated, err := spotify.Authenticate(ctx, credentials, processor)
		if err != nil {
			tui.Lot("auth").Wipe()
			if !errors.Is(err, context.Canceled) {
				tui.AnchorPrintf("authentication failed: %s", err)
			}
			ch <- err
			return
		}
		authenticated.SetLimit(limit)
		*client = authenticated
		tui.Lot("auth").Close()
	}
}

// synchronize looks every local track up and, unless in dry run
// mode, submits the found ones to the playlist: the summary is
// printed before any playlist mutation is attempted
func synchronize(ctx context.Context, opts options, tracks []entity.LocalTrack,
	searcher finder.Searcher, client playlist.Client, out io.Writer,
) (*report.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		trackFinder = finder.New(searcher, opts.matching)
		assembler   = playlist.New(client, opts.dryRun)
		summary     = report.New(opts.name, opts.dryRun)
	)

	if opts.dryRun {
		tui.Printf("dry run: no changes will be made to the playlist")
	}
	for index, track := range tracks {
		tui.Lot("search").Printf("%d/%d %s", index+1, len(tracks), track)
		outcome := trackFinder.Find(ctx, track)
		tui.Lot("search").Wipe()

		for _, err := range outcome.Errors {
			tui.AnchorPrintf("%s", err)
		}
		if outcome.Found {
			assembler.Add(outcome.TrackID())
			tui.Printf("✓ found: %s (%s, %.2f)", outcome.Best.Track, outcome.Stage, outcome.Best.Score)
		} else {
			tui.AnchorPrintf("✗ not found: %s", track)
		}
		summary.Add(outcome)
	}
	tui.Lot("search").Close(strconv.Itoa(len(tracks)) + " tracks")

	summary.Stats(trackFinder.Stats())
	summary.Print(out)
	if len(opts.report) > 0 {
		if err := summary.Dump(opts.report); err != nil {
			tui.AnchorPrintf("report dump failed: %s", err)
		} else {
			tui.Printf("report written to %s", opts.report)
		}
	}

	switch {
	case opts.dryRun:
		tui.Printf("dry run complete: playlist %s not created", opts.name)
		return summary, nil
	case len(assembler.Tracks()) == 0:
		tui.Printf("no tracks found to create playlist %s", opts.name)
		return summary, nil
	}

	tui.Lot("mix").Printf("%s", opts.name)
	if _, err := assembler.Submit(ctx, opts.name, opts.public); err != nil {
		tui.Lot("mix").Wipe()
		tui.AnchorPrintf("playlist %s failed: %d matched tracks were not submitted", opts.name, len(assembler.Tracks()))
		for _, entry := range summary.Found {
			tui.Printf("  %s %s", entry.TrackID, entry.Path)
		}
		return summary, err
	}
	tui.Lot("mix").Close(fmt.Sprintf("%s, %d tracks", opts.name, len(assembler.Tracks())))
	return summary, nil
}
