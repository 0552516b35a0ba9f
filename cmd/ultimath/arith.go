package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/ultimath/arbitrary"
	"github.com/calebcase/ultimath/guarantee"
)

// number is the arbitrary integer used by the command line.
type number = arbitrary.Int[uint64]

// parse reads a decimal, or 0x/0b/0o prefixed, integer.
func parse(s string) (x number, err error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return x, Error.New("invalid integer %q", s)
	}

	return arbitrary.FromBig[uint64](b), nil
}

func parse2(args []string) (x, y number, err error) {
	x, err = parse(args[0])
	if err != nil {
		return x, y, err
	}

	y, err = parse(args[1])

	return x, y, err
}

func (a *app) divideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide A B",
		Short: "Print the truncated quotient and remainder of A / B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parse2(args)
			if err != nil {
				return err
			}

			d, ok := guarantee.NonzeroValue(y)
			if !ok {
				return Error.New("division by zero")
			}

			div, err := x.Division(d).Err()
			if err != nil {
				return Error.Wrap(err)
			}
			a.logger.Debug("divide",
				zap.Int("dividend words", x.Len()),
				zap.Int("divisor words", y.Len()),
			)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", div.Quotient, div.Remainder)

			return err
		},
	}
}

func (a *app) multiplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multiply A B",
		Short: "Print the product A * B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parse2(args)
			if err != nil {
				return err
			}

			p, err := x.Times(y).Err()
			if err != nil {
				return Error.Wrap(err)
			}
			a.logger.Debug("multiply",
				zap.Int("product words", p.Len()),
			)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p)

			return err
		},
	}
}
