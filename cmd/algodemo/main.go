package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfgPath string
	verbose bool
	config  *Config
	log     *zap.SugaredLogger
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	var rawlog *zap.Logger
	var err error
	if verbose {
		rawlog, err = zap.NewDevelopment()
	} else {
		rawlog, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return rawlog.Sugar(), nil
}

func (a *app) command(use, short string, demos ...demo) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range demos {
				if err := d(cmd.OutOrStdout(), a.log, a.config); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "algodemo",
		Short:         "Runs the data structure and algorithm demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if a.log, err = newLogger(a.verbose); err != nil {
				return err
			}
			if a.config, err = LoadConfig(a.cfgPath); err != nil {
				return err
			}
			a.log.Debugw("loaded config", "path", a.cfgPath, "command", cmd.Name())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML file with the demo inputs")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		a.command("avl", "Insert into and remove from an AVL tree", runAVL),
		a.command("bst", "Build a plain binary search tree and rebalance it", runBST),
		a.command("search", "Binary search a sorted slice", runSearch),
		a.command("knapsack", "Solve a fractional knapsack greedily", runKnapsack),
		a.command("anagrams", "Group words that are anagrams of each other", runAnagrams),
		a.command("sort", "Sort with merge, insertion and bubble sort", runSort),
		a.command("all", "Run every demonstration", runAVL, runBST, runSearch, runKnapsack, runAnagrams, runSort),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
