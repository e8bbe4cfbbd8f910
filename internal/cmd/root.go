// Package cmd implements the stakeapi CLI.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stakeapi/stakeapi-go/internal/config"
	"github.com/stakeapi/stakeapi-go/internal/observability"
	"github.com/stakeapi/stakeapi-go/internal/output"
	"github.com/stakeapi/stakeapi-go/pkg/stakeapi"
)

var (
	cfgFile    string
	verbose    bool
	outputFlag string

	cfg *config.Config
	log *zap.Logger

	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by the main package with ldflags-injected
// build metadata.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

var rootCmd = &cobra.Command{
	Use:           "stakeapi",
	Short:         "Typed client for the platform's casino, sports and betting API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if outputFlag != "" {
			cfg.Output = outputFlag
		}
		log, err = observability.NewLogger(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync() // nolint:errcheck // stderr sync is best-effort
		}
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table or json")
}

// withSession opens a client session for the duration of fn, guaranteeing
// the session is closed on every exit path.
func withSession(ctx context.Context, fn func(ctx context.Context, c *stakeapi.Client) error) error {
	return stakeapi.Session(ctx, cfg.ClientConfig(), func(c *stakeapi.Client) error {
		return fn(ctx, c)
	}, stakeapi.WithLogger(log))
}

// render prints rows as a table or JSON per the configured format.
func render(v any, tableFn func() string) error {
	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	switch format {
	case output.FormatJSON:
		s, err := output.JSON(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, s)
	default:
		fmt.Fprintln(os.Stdout, tableFn())
	}
	return nil
}
