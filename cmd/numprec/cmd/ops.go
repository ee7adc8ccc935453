package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/numprec"
)

// operation is the signature shared by the variadic methods of numprec.Calc.
type operation func(c numprec.Calc, x, y float64, more ...float64) (float64, error)

func newOpCmd(a *app, name, short string, op operation) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <x> <y> [more...]",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseOperands(args)
			if err != nil {
				return err
			}
			z, err := op(a.calc, nums[0], nums[1], nums[2:]...)
			if err != nil {
				a.logger.Warn("operation failed", "op", name, "operands", args, "error", err)
				return err
			}
			a.logger.Debug("operation computed", "op", name, "operands", args, "result", z)
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(z))
			return nil
		},
	}
}
