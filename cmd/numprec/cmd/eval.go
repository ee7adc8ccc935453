package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/numprec/internal/eval"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression in prefix notation",
		Long: `Evaluate an arithmetic expression written in prefix (Polish) notation.

Examples:
  numprec eval "+ 2.3 2.4"
  numprec eval "* 10 + 1.23 4.56"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			z, err := eval.New(a.calc).Evaluate(expr)
			if err != nil {
				a.logger.Warn("evaluation failed", "expression", expr, "error", err)
				return err
			}
			a.logger.Debug("expression evaluated", "expression", expr, "result", z)
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(z))
			return nil
		},
	}
}
