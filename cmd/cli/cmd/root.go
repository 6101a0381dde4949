// Package cmd provides the CLI commands for convert.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"unit-convert/core/engine"
	"unit-convert/core/output"
	"unit-convert/internal/config"
	"unit-convert/internal/logging"
)

const version = "0.1.0"

// options holds flag values and the state derived from them before a
// command runs
type options struct {
	cfgFile   string
	verbose   bool
	precision int
	format    string

	cfg       *config.Config
	converter *engine.Converter
	formatter output.Formatter
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "convert <type> <value> [from] [to]",
		Short: "Convert values between units of temperature, distance and weight",
		Long: `convert converts numeric values between units of the same measurement type
and compares quantities expressed in two different units.

Measurement types and units:
  temperature  C, F, K   (from/to default to the configured units)
  distance     km, mi, m
  weight       g, oz, lb

Examples:
  convert temperature 100 C F
  convert temperature 100
  convert distance 5 km mi
  convert compare 5 km 3 mi
  convert compare -40 C -40 F
  convert --format json weight 16 oz lb`,
		Args:              cobra.RangeArgs(2, 4),
		PersistentPreRunE: opts.setup,
		RunE:              opts.runConvert,
	}

	// Negative values must reach the positional arguments untouched.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.json, .yaml, .yml or .hcl)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().IntVarP(&opts.precision, "precision", "p", 0, "decimal digits to round results to (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format: text or json (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(newCompareCmd(opts))
	rootCmd.AddCommand(newUnitsCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return executeArgs(NewRootCmd(), os.Args[1:])
}

func executeArgs(root *cobra.Command, args []string) error {
	root.SetArgs(protectNegativeValues(root, args))
	return root.Execute()
}

// protectNegativeValues inserts "--" ahead of a negative number that would
// otherwise be the first positional argument of a command, so pflag does
// not read "-40" as a group of shorthand flags. Once a command has seen a
// positional argument, interspersed parsing is off and later values pass
// through unchanged.
func protectNegativeValues(root *cobra.Command, args []string) []string {
	cmd := root
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case isNegativeNumber(arg):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		case strings.HasPrefix(arg, "-"):
			if takesValue(cmd, arg) {
				i++
			}
		default:
			sub := subcommand(cmd, arg)
			if sub == nil {
				return args
			}
			cmd = sub
		}
	}
	return args
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// takesValue reports whether a flag token consumes the following argument
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		name := arg[2:]
		if flag = cmd.Flags().Lookup(name); flag == nil {
			flag = cmd.InheritedFlags().Lookup(name)
		}
	case len(arg) == 2:
		short := arg[1:]
		if flag = cmd.Flags().ShorthandLookup(short); flag == nil {
			flag = cmd.InheritedFlags().ShorthandLookup(short)
		}
	}
	return flag != nil && flag.NoOptDefVal == ""
}

func subcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

// setup loads the configuration, applies flag overrides and builds the
// converter shared by every subcommand.
func (o *options) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if o.cfgFile != "" {
		loaded, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = o.precision
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	formatter, err := output.Get(cfg.Output.Format)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.converter = engine.New(cfg)
	o.formatter = formatter

	logging.Debug("configuration loaded",
		zap.String("config", o.cfgFile),
		zap.Int("precision", cfg.Precision),
		zap.String("format", cfg.Output.Format),
	)
	return nil
}

func (o *options) runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	req := engine.ConversionRequest{Type: args[0], Value: args[1]}
	if len(args) > 2 {
		req.From = args[2]
	}
	if len(args) > 3 {
		req.To = args[3]
	}

	conv, err := o.converter.Execute(req)
	if err != nil {
		return err
	}
	return o.formatter.RenderConversion(cmd.OutOrStdout(), conv)
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "convert version %s\n", version)
		},
	}
}
