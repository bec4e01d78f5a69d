package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bft-labs/bowltrack/internal/app"
	"github.com/bft-labs/bowltrack/internal/cliconfig"
	"github.com/bft-labs/bowltrack/internal/domain"
	"github.com/bft-labs/bowltrack/internal/entry"
	"github.com/bft-labs/bowltrack/internal/scoresheet"
)

func newCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "new [date]",
		Short: "Bowl a new game interactively, throw by throw",
		Long: strings.TrimSpace(`
Record a game as you bowl it. Enter pin counts (X for a strike, - for a
gutter ball) one or more per line. "m <frame> <throws...>" re-enters a frame
already bowled; "q" abandons the game without saving.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			date, err := e.parseDate(args, 0)
			if err != nil {
				return err
			}
			number, err := e.tracker.NextGameNumber(ctx, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: Game %d\n", e.formatDate(date), number)

			prompt := entry.NewPrompt(cmd.InOrStdin(), out, scoresheet.Render)
			game, err := prompt.Record(domain.NewGame(number))
			if errors.Is(err, entry.ErrQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("game not saved: %w", err)
			}

			stored, err := e.tracker.AddGame(ctx, date, game)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved game %d: %d\n", stored.Number(), stored.Score())
			return nil
		},
	}
}

func addCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <throws...>",
		Short: "Add a finished game from its throws in order",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := e.parseDate(args, 0)
			if err != nil {
				return err
			}
			throws, err := parseThrowArgs(args[1:])
			if err != nil {
				return err
			}

			rec := entry.NewRecorder(domain.NewGame(0))
			if err := rec.ThrowAll(throws); err != nil {
				return err
			}
			if !rec.Done() {
				return fmt.Errorf("%w: game stops in frame %d", domain.ErrInvalidGame, rec.Frame())
			}

			stored, err := e.tracker.AddGame(cmd.Context(), date, rec.Game())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, scoresheet.Render(stored))
			fmt.Fprintf(out, "Saved game %d on %s: %d\n", stored.Number(), e.formatDate(date), stored.Score())
			return nil
		},
	}
}

func showCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show [date]",
		Short: "Print the scoresheets of a session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := e.parseDate(args, 0)
			if err != nil {
				return err
			}
			s, err := e.tracker.Session(cmd.Context(), date)
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), e, s)
			return nil
		},
	}
}

func statsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [date]",
		Short: "Print a session's statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := e.parseDate(args, 0)
			if err != nil {
				return err
			}
			stats, err := e.tracker.Stats(cmd.Context(), date)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), e.formatDate(date), stats)
			return nil
		},
	}
}

func modifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "modify <date> <game> <frame> <throws...>",
		Short: "Replace one frame of a stored game",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := e.parseDate(args, 0)
			if err != nil {
				return err
			}
			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("game must be a number: %q", args[1])
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("frame must be a number: %q", args[2])
			}
			throws, err := parseThrowArgs(args[3:])
			if err != nil {
				return err
			}

			g, err := e.tracker.ModifyFrame(cmd.Context(), date, number, n, domain.FrameFromThrows(throws))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, scoresheet.Render(g))
			fmt.Fprintf(out, "Game %d is now %d\n", g.Number(), g.Score())
			return nil
		},
	}
}

func deleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date> [game]",
		Short: "Delete a whole session, or one game of it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := e.parseDate(args, 0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if err := e.tracker.DeleteSession(cmd.Context(), date); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted session %s\n", e.formatDate(date))
				return nil
			}

			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("game must be a number: %q", args[1])
			}
			removed, err := e.tracker.RemoveGame(cmd.Context(), date, number)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted game %d (%d) from %s\n", number, removed.Score(), e.formatDate(date))
			return nil
		},
	}
}

func listCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions with their game count and average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dates, err := e.tracker.Dates(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(dates) == 0 {
				fmt.Fprintln(out, "No sessions recorded")
				return nil
			}
			for _, d := range dates {
				stats, err := e.tracker.Stats(ctx, d)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %2d games  avg %6.2f  high %3d\n",
					e.formatDate(d), stats.Games, stats.Average, stats.HighGame)
			}
			return nil
		},
	}
}

func watchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [date]",
		Short: "Reprint a session whenever the store changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := e.parseDate(args, 0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			notifier := cliconfig.ChangeNotifier(e.cfg, e.logger)

			f := app.NewFollower(e.tracker, notifier, e.logger, date, func(s *domain.Session) {
				printSession(out, e, s)
			}, app.NewStateLog(e.logger, date))
			return f.Run(cmd.Context())
		},
	}
}

// parseThrowArgs reads every whitespace separated field of args as a throw;
// unlike entry.ParseScores it rejects the whole list on a bad field.
func parseThrowArgs(args []string) ([]int, error) {
	var throws []int
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			t := entry.ParseScores(field)
			if len(t) != 1 {
				return nil, fmt.Errorf("cannot read %q as a throw", field)
			}
			throws = append(throws, t[0])
		}
	}
	if len(throws) == 0 {
		return nil, fmt.Errorf("no throws given")
	}
	return throws, nil
}

func printSession(out io.Writer, e *env, s *domain.Session) {
	date := e.formatDate(s.Date())
	if s.Len() == 0 {
		fmt.Fprintf(out, "No games on %s\n", date)
		return
	}
	for _, g := range s.Games() {
		fmt.Fprintf(out, "%s: Game %d  (%d)\n", date, g.Number(), g.Score())
		fmt.Fprint(out, scoresheet.Render(g))
	}
	printStats(out, date, s.Stats())
}

func printStats(out io.Writer, date string, st domain.SessionStats) {
	fmt.Fprintf(out, "Session %s\n", date)
	if st.Games == 0 {
		fmt.Fprintln(out, "  no games")
		return
	}
	fmt.Fprintf(out, "  games            %d\n", st.Games)
	fmt.Fprintf(out, "  average          %.2f\n", st.Average)
	fmt.Fprintf(out, "  high / low       %d / %d\n", st.HighGame, st.LowGame)
	fmt.Fprintf(out, "  pins             %d\n", st.PinCount)
	fmt.Fprintf(out, "  strike rate      %.1f%%\n", 100*st.StrikeRate)
	fmt.Fprintf(out, "  spare rate       %.1f%%\n", 100*st.SpareRate)
	fmt.Fprintf(out, "  open frames      %.1f%%\n", 100*st.OpenFrameRate)
	fmt.Fprintf(out, "  clean frames     %.1f%%\n", 100*st.CleanFrameRate)
	fmt.Fprintf(out, "  first ball avg   %.2f\n", st.AvgFirstBallPinfall)
}
