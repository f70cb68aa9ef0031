// Package cmd provides the CLI commands for the Cadence application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tbreslin/cadence/internal/adapters/cue"
	"github.com/tbreslin/cadence/internal/adapters/git"
	"github.com/tbreslin/cadence/internal/adapters/notification"
	"github.com/tbreslin/cadence/internal/adapters/storage"
	"github.com/tbreslin/cadence/internal/adapters/tui"
	"github.com/tbreslin/cadence/internal/config"
	"github.com/tbreslin/cadence/internal/domain"
	"github.com/tbreslin/cadence/internal/engine"
	"github.com/tbreslin/cadence/internal/ports"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	dbPath string
	mute   bool

	// Global dependencies
	appConfig   *config.Config
	sessionLog  ports.SessionLog
	gitDetector ports.GitDetector
	cuePlayer   *cue.Player
	notifier    *notification.Notifier
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Cadence - a focus and break interval timer",
	Long: `Cadence is a terminal timer that runs focus and break sessions in a
configurable pattern, with audio cues, desktop notifications, and a
journal of completed sessions.

Run "cadence" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the session journal (default: ~/.cadence/cadence.db)")
	rootCmd.PersistentFlags().BoolVar(&mute, "mute", false, "Disable audio cues for this run")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Cadence\nVersion: {{.Version}}\n")
}

// initializeServices sets up all the required adapters.
func initializeServices() error {
	// Load configuration
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	cuesEnabled := appConfig.Cues.Enabled && !mute
	cuePlayer = cue.New(cuesEnabled)
	notifier = notification.New(&appConfig.Cues)

	// Determine journal path
	if dbPath == "" {
		dbPath = config.GetDBPath(appConfig)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	sessionLog, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize session journal: %w", err)
	}

	gitDetector = git.NewDetector()

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if sessionLog != nil {
		return sessionLog.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// newEngine builds an engine from the loaded configuration and wires
// natural expiries into the journal and the notifier.
func newEngine(ctx context.Context) *engine.Engine {
	eng := engine.New(appConfig.ToPattern(), appConfig.ToDurations(), cuePlayer)

	workingDir, _ := os.Getwd()

	eng.SetOnComplete(func(completed domain.SessionType, wrapped bool) {
		now := time.Now()
		record := domain.NewSessionRecord(completed, eng.Durations().Seconds(completed))

		// Tag focus sessions with the repository they were spent in.
		if completed == domain.SessionTypeFocus && gitDetector.IsAvailable() {
			if info, err := gitDetector.Detect(ctx, workingDir); err == nil && info != nil {
				record.SetGitContext(info.Branch, info.Commit)
			}
		}

		// Journal failures must never interrupt the countdown.
		_ = sessionLog.RecordSession(ctx, record)
		if wrapped {
			_ = sessionLog.RecordCycle(ctx, now)
		}

		_ = notifier.NotifySessionComplete(completed, eng.Mode())
	})

	return eng
}

// runTimer implements the bare "cadence" command: it opens the timer
// interface and blocks until the user quits.
func runTimer(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	eng := newEngine(ctx)

	return tui.Run(ctx, eng, tui.Options{
		Theme:       &appConfig.Theme,
		CuesEnabled: cuePlayer.Enabled(),
		CueToggle: func(enabled bool) {
			cuePlayer.SetEnabled(enabled)
			appConfig.Cues.Enabled = enabled
			_ = config.Save(appConfig)
		},
	})
}
