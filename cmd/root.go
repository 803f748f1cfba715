package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pridecraft/packsmith/config"
	"github.com/pridecraft/packsmith/modrinth"
	"github.com/pridecraft/packsmith/pipeline"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	runner  *pipeline.Runner

	// Command flags
	filterExpr  string
	dryRun      bool
	maxParallel int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "packsmith",
	Short: "A tool to publish built content packs to Modrinth",
	Long: `packsmith is a CLI tool that takes a directory of built pack variants
and drives them through the Modrinth publishing lifecycle: creating draft
projects, filling in icons, galleries and metadata, uploading pack files
as versions and submitting drafts for review.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version info shown by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")
	rootCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "only operate on projects matching this expression")
	rootCmd.PersistentFlags().IntVarP(&maxParallel, "parallel", "p", 0, "max concurrent API operations (overrides config)")
}

// initializeApp initializes the configuration, the API client and the
// task runner
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override config from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}
	if cmd.Flags().Changed("parallel") {
		if maxParallel < 1 {
			return fmt.Errorf("--parallel must be at least 1")
		}
		cfg.Modrinth.MaxParallel = maxParallel
	}

	// The client logs every request at debug level; keep it quiet unless
	// explicitly enabled.
	apiLogger := logger
	if !cfg.Modrinth.DebugLogging {
		apiLogger = logger.Level(zerolog.InfoLevel)
	}

	client, err := modrinth.NewClient(cfg.Modrinth.URL, cfg.Modrinth.Token, cfg.Modrinth.UserAgent, apiLogger)
	if err != nil {
		return fmt.Errorf("failed to create Modrinth client: %w", err)
	}

	runner = pipeline.NewRunner(client, cfg, logger)

	if filterExpr != "" {
		filter, err := pipeline.CompileFilter(filterExpr)
		if err != nil {
			return err
		}
		logger.Info().Str("filter", filter.String()).Msg("Filter active")
		runner.SetFilter(filter)
	}

	if cfg.Safety.DryRun {
		logger.Info().Msg("Dry run mode: no changes will be made")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only when writing to a terminal
	useColor := cfg.Color && (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
