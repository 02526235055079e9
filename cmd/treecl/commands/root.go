// Package commands implements the treecl subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/flopezo/treeCl/internal/config"
	"github.com/flopezo/treeCl/internal/observability"
	"github.com/flopezo/treeCl/pkg/constants"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagQuiet   = "quiet"
	flagLogJSON = "log-json"
	flagFormat  = "format"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	tracer   trace.Tracer
	inst     *observability.Instruments
	shutdown func(ctx context.Context) error
}

type rootFlags struct {
	configPath string
	verbose    bool
	quiet      bool
	logJSON    bool
}

// NewRootCommand builds the treecl command tree.
func NewRootCommand() *cobra.Command {
	var flags rootFlags

	state := &app{}

	rootCmd := &cobra.Command{
		Use:   "treecl",
		Short: "treeCl toolkit - helpers for phylogenetic tree clustering",
		Long: `treecl bundles the small utilities shared by the tree clustering pipeline.

Commands:
  sort      Sort labels in natural order
  tokens    Show natural sort keys
  analyses  List supported tree-inference methods
  memory    Size LSF memory requests for PhyML jobs
  dna       Classify sequences as DNA or protein
  version   Show the banner and version`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.setup(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return state.close(cmd.Context())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, flagConfig, "", "config file (default .treecl.yaml in CWD or $HOME)")
	pf.BoolVarP(&flags.verbose, flagVerbose, "v", false, "verbose output")
	pf.BoolVarP(&flags.quiet, flagQuiet, "q", false, "suppress output except errors")
	pf.BoolVar(&flags.logJSON, flagLogJSON, false, "emit logs as JSON")

	rootCmd.AddCommand(
		newSortCommand(state),
		newTokensCommand(state),
		newAnalysesCommand(state),
		newMemoryCommand(state),
		newDNACommand(state),
		newVersionCommand(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	switch {
	case flags.quiet:
		level = slog.LevelError
	case flags.verbose:
		level = slog.LevelDebug
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = constants.Version
	obsCfg.Environment = cfg.Telemetry.Environment
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(cfg.Telemetry.OTLPHeaders)
	obsCfg.SampleRatio = cfg.Telemetry.SampleRatio
	obsCfg.LogLevel = level
	obsCfg.LogJSON = cfg.Logging.JSON || flags.logJSON
	obsCfg.LogWriter = cmd.ErrOrStderr()

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	inst, err := observability.NewInstruments(providers.Meter)
	if err != nil {
		return fmt.Errorf("init instruments: %w", err)
	}

	a.cfg = cfg
	a.logger = providers.Logger
	a.tracer = providers.Tracer
	a.inst = inst
	a.shutdown = providers.Shutdown

	a.logger.Debug("config loaded", "epsilon", cfg.Epsilon, "command", cmd.Name())

	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}

	err := a.shutdown(ctx)
	if err != nil {
		return fmt.Errorf("shutdown telemetry: %w", err)
	}

	return nil
}
