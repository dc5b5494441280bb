// SPDX-License-Identifier: MIT

// Command nsum evaluates a catalogue of classic series, products and limits
// with the convergence-acceleration engine.
//
//	nsum list
//	nsum eval zeta2 --digits 30 --method r+s --verbose
//	nsum eval log10 --config nsum.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/accel/nsum"
	"github.com/katalvlaran/accel/numeric"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostics logger; tests replace it.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "nsum",
		Short:        "Evaluate infinite sums, products and limits to arbitrary precision",
		SilenceUsage: true,
	}
	root.AddCommand(newListCmd(), newEvalCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalogue of problems",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, name := range problemNames() {
				fmt.Fprintf(out, "%-18s %s\n", name, catalog[name].Summary)
			}
		},
	}
}

func newEvalCmd() *cobra.Command {
	var (
		flags      = defaultConfig()
		methods    = nsum.DefaultMethods
		configPath string
	)

	cmd := &cobra.Command{
		Use:       "eval <problem>",
		Short:     "Evaluate one catalogue problem",
		Long:      "Evaluates a catalogue problem. Flags override values read from --config.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: problemNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := catalog[args[0]]
			if !ok {
				return fmt.Errorf("nsum: unknown problem %q (see 'nsum list')", args[0])
			}

			cfg := defaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath, cfg); err != nil {
					return err
				}
			}
			fl := cmd.Flags()
			if fl.Changed("digits") {
				cfg.Digits = flags.Digits
			}
			if fl.Changed("method") {
				cfg.Methods = methods.String()
			}
			if fl.Changed("tol") {
				cfg.Tolerance = flags.Tolerance
			}
			if fl.Changed("max-terms") {
				cfg.MaxTerms = flags.MaxTerms
			}
			if fl.Changed("steps") {
				cfg.Steps = flags.Steps
			}
			if fl.Changed("skip") {
				cfg.Skip = flags.Skip
			}
			if fl.Changed("shanks-seed") {
				cfg.ShanksSeed = flags.ShanksSeed
			}
			if fl.Changed("verbose") {
				cfg.Verbose = flags.Verbose
			}

			return evaluate(cmd.OutOrStdout(), p, cfg)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&flags.Digits, "digits", flags.Digits, "working precision in significant digits")
	fl.Var(&methods, "method", "methods joined by '+': d|direct, r|richardson, s|shanks, e|euler-maclaurin")
	fl.StringVar(&flags.Tolerance, "tol", "", "absolute tolerance (default eps/1024)")
	fl.IntVar(&flags.MaxTerms, "max-terms", 0, "term budget (default 10 × digits)")
	fl.IntSliceVar(&flags.Steps, "steps", nil, "batch sizes; the last one repeats")
	fl.IntVar(&flags.Skip, "skip", 0, "terms taken before any convergence test")
	fl.Int64Var(&flags.ShanksSeed, "shanks-seed", 0, "seed of the Shanks perturbations")
	fl.BoolVarP(&flags.Verbose, "verbose", "v", false, "log per-batch diagnostics")
	fl.StringVar(&configPath, "config", "", "YAML or TOML config file")

	return cmd
}

// evaluate runs p under cfg and prints the result.
func evaluate(out io.Writer, p problem, cfg Config) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	all := append(append([]nsum.Option{}, p.Defaults...), opts...)
	all = append(all, nsum.WithLogger(logger.With(zap.String("problem", p.Name))))

	res, err := p.Eval(numeric.NewContext(cfg.Digits), all)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s = %s\n", p.Name, res.Value)
	fmt.Fprintf(out, "  reference  %s\n", p.Reference)
	fmt.Fprintf(out, "  error      %s\n", res.Error)
	fmt.Fprintf(out, "  method     %s\n", res.Method)
	fmt.Fprintf(out, "  terms      %d\n", res.Terms)
	fmt.Fprintf(out, "  converged  %t\n", res.Converged)

	return nil
}
