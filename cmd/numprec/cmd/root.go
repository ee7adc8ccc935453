package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/govalues/numprec"
	"github.com/govalues/numprec/internal/config"
	"github.com/govalues/numprec/internal/logging"
)

// app carries state shared by all subcommands of a single invocation.
type app struct {
	cfgFile   string
	precision int
	logLevel  string
	logFormat string

	cfg    *config.Config
	calc   numprec.Calc
	logger *slog.Logger
}

// NewRootCmd builds the numprec command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "numprec",
		Short: "Decimal-safe arithmetic on floating-point numbers",
		Long: `numprec adds, subtracts, multiplies, divides and rounds decimal numbers
so that the results match exact base-10 arithmetic, e.g. 2.3 + 2.4 = 4.7.

Negative operands must follow "--", e.g. numprec add -- -1.5 2.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML")
	flags.IntVar(&a.precision, "precision", numprec.DefaultPrec, "significant digits kept when suppressing floating-point noise")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "text", "log format: text, json")

	root.AddCommand(
		newOpCmd(a, "add", "Add numbers from left to right", numprec.Calc.Add),
		newOpCmd(a, "sub", "Subtract numbers from left to right", numprec.Calc.Sub),
		newOpCmd(a, "mul", "Multiply numbers from left to right", numprec.Calc.Mul),
		newOpCmd(a, "div", "Divide numbers from left to right", numprec.Calc.Quo),
		newRoundCmd(a),
		newEvalCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree and reports errors on stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root, err)
		return err
	}
	return nil
}

// setup loads the configuration, applies flag overrides and
// prepares the logger and calculator.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Calc.Precision = a.precision
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	calc, err := cfg.NewCalc()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.calc = calc
	a.logger = logging.Setup(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	a.logger.Debug("configuration loaded",
		"config", a.cfgFile,
		"precision", cfg.Calc.Precision,
		"command", cmd.Name(),
	)
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// parseOperands converts command-line arguments to numbers.
func parseOperands(args []string) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, s := range args {
		f, err := numprec.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("operand %v: %w", i+1, err)
		}
		nums[i] = f
	}
	return nums, nil
}

// formatNumber formats f the way a human writes it, switching to
// scientific notation only for very large or very small magnitudes.
func formatNumber(f float64) string {
	abs := math.Abs(f)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
