package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRoundCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "round <x> <places>",
		Short: "Round a number to a number of decimal places",
		Long: `Round a number to the given number of digits after the decimal point
using "half away from zero" rule. Negative places round to the left
of the decimal point.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseOperands(args[:1])
			if err != nil {
				return err
			}
			places, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("places %q: %w", args[1], err)
			}
			z, err := a.calc.RoundDecimal(nums[0], places)
			if err != nil {
				a.logger.Warn("rounding failed", "value", args[0], "places", places, "error", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(z))
			return nil
		},
	}
}
