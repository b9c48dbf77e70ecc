package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	seed    int64
	calls   int
	verbose bool
	noColor bool

	// Logger
	logger *zap.Logger
)

// rootCmd runs the full tour when invoked bare; subcommands pick one
// concept each.
var rootCmd = &cobra.Command{
	Use:   "purefuncdemos",
	Short: "Guided tour of functional-programming idioms in Go",
	Long: `purefuncdemos prints small labeled demonstrations of functional
idioms: pure functions, immutable values, pattern matching, declarative
collection processing and failure-as-a-value.

Run without arguments for the full tour, or pick one concept:

  purefuncdemos shapes
  purefuncdemos service --seed 42 --calls 10`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTour(cmd.OutOrStdout())
	},
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Areas via a type switch over the closed shape set",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoShapes(cmd.OutOrStdout())
	},
}

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Ordered age classification, first match wins",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoPeople(cmd.OutOrStdout())
	},
}

var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Number-pair comparison labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoNumbers(cmd.OutOrStdout())
	},
}

var pureCmd = &cobra.Command{
	Use:   "pure",
	Short: "Arithmetic pure functions and composition",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoPure(cmd.OutOrStdout())
	},
}

var immutableCmd = &cobra.Command{
	Use:   "immutable",
	Short: "Copy-based updates and non-destructive transforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoImmutable(cmd.OutOrStdout())
	},
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Declarative filtering, mapping and folding",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoCollections(cmd.OutOrStdout())
	},
}

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Simulated flaky calls reported as Result values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoService(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Seed for the simulated service draws")
	rootCmd.PersistentFlags().IntVar(&calls, "calls", 5, "Number of simulated service calls")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored concept labels")

	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(peopleCmd)
	rootCmd.AddCommand(numbersCmd)
	rootCmd.AddCommand(pureCmd)
	rootCmd.AddCommand(immutableCmd)
	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(serviceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
