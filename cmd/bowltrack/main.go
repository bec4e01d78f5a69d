package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/bowltrack/internal/app"
	"github.com/bft-labs/bowltrack/internal/cliconfig"
	"github.com/bft-labs/bowltrack/internal/domain"
	"github.com/bft-labs/bowltrack/internal/entry"
	"github.com/bft-labs/bowltrack/internal/ports"
	"github.com/bft-labs/bowltrack/pkg/log"
)

const helpDescription = `
Keep score of your ten-pin bowling sessions.

Record games frame by frame, print alley-style scoresheets and follow your
averages, strike and spare rates per session. Sessions are stored per date
in JSON files, SQLite or bbolt; configure via file, env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  bowltrack new                       # bowl a game for today, throw by throw
  bowltrack add 3/14 x x x x x x x x x x x x
  bowltrack show yesterday
  bowltrack stats 2024-03-14 --store sqlite
  bowltrack modify 3/14 1 10 9 1      # game 1, frame 10 becomes 9 / 1
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// env carries what every subcommand needs once configuration is loaded.
type env struct {
	cfg     cliconfig.Config
	logger  *log.ZerologAdapter
	repo    ports.SessionRepository
	tracker *app.Tracker
}

func (e *env) close() {
	if e.repo != nil {
		if err := e.repo.Close(); err != nil {
			e.logger.Warn("close store", log.Err(err))
		}
		e.repo = nil
	}
}

// parseDate reads an optional date argument, defaulting to today.
func (e *env) parseDate(args []string, i int) (domain.Date, error) {
	if len(args) <= i {
		return e.tracker.Today(), nil
	}
	return entry.ParseDate(args[i], e.tracker.Clock())
}

func (e *env) formatDate(d domain.Date) string {
	return d.Time().Format(e.cfg.DateLayout)
}

func main() {
	root, e := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "[!] %v\n", err)
		e.close()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The returned env is filled in by the
// root's pre-run hook; close it when a run fails before the post-run hook.
func newRootCmd() (*cobra.Command, *env) {
	cfg := cliconfig.DefaultConfig()
	var cfgPath, envFile string
	e := &env{}

	root := &cobra.Command{
		Use:           "bowltrack",
		Short:         "Keep score of your ten-pin bowling sessions",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Load config file first (default $HOME/.bowltrack/config.toml)
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// .env, then BOWLTRACK_* variables; flags still win via changed map
			if err := cliconfig.LoadDotEnv(envFile, changed["env-file"]); err != nil {
				return err
			}
			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cliconfig.Logger(cfg)
			if err != nil {
				return err
			}
			logger.Debug("configuration",
				log.String("store", cfg.Store),
				log.String("data_dir", cfg.DataDir),
				log.String("db_path", cfg.DBPath),
			)

			ctx := cmd.Context()
			repo, err := cliconfig.OpenRepository(ctx, cfg)
			if err != nil {
				return fmt.Errorf("open %s store: %w", cfg.Store, err)
			}

			e.cfg = cfg
			e.logger = logger
			e.repo = repo
			e.tracker = app.NewTracker(repo, logger, domain.SystemClock{})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.close()
		},
	}

	// Flags
	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.bowltrack/config.toml)")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file with BOWLTRACK_* variables")
	pf.StringVar(&cfg.Store, "store", cfg.Store, "session store: file, sqlite or bolt")
	pf.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for session files and databases")
	pf.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "database file for the sqlite and bolt stores (defaults inside data-dir)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&cfg.DateLayout, "date-layout", cfg.DateLayout, "Go time layout used to print dates")

	root.AddCommand(
		newCmd(e),
		addCmd(e),
		showCmd(e),
		statsCmd(e),
		modifyCmd(e),
		deleteCmd(e),
		listCmd(e),
		watchCmd(e),
	)
	return root, e
}
