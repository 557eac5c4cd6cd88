// Command kurosu prepares vocabulary dictionaries and puzzle data for the
// Japanese crossword generator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/kurosu/pkg/config"
	"github.com/japaniel/kurosu/pkg/logging"
)

// app carries the state shared by every subcommand. It is filled in by the
// root command's pre-run hook.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kurosu",
		Short: "Prepare vocabulary and puzzle data for a Japanese crossword generator",
		Long: `kurosu turns a ZKanji vocabulary export into tiered answer/clue
dictionaries, builds the verb stem tables used during filtering, converts
plain word lists and post-processes generated puzzles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", os.Getenv("KUROSU_CONFIG_FILE"), "path to YAML config file")

	root.AddCommand(a.buildCmd())
	root.AddCommand(a.stemsCmd())
	root.AddCommand(a.wordlistCmd())
	root.AddCommand(a.puzzlesCmd())
	root.AddCommand(a.lookupCmd())
	root.AddCommand(a.fetchJMdictCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) reportError(err error) {
	if a.logger == nil {
		fmt.Fprintf(os.Stderr, "kurosu: %v\n", err)
		return
	}
	a.logger.Error("command failed", zap.Error(err))
	_ = a.logger.Sync()
}

// override copies a flag value onto a config field when the flag was set
// on the command line.
func override[T any](cmd *cobra.Command, name string, dst *T, val T) {
	if cmd.Flags().Changed(name) {
		*dst = val
	}
}
