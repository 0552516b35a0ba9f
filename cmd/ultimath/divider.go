package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebcase/ultimath/word"
)

func (a *app) dividerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "divider D",
		Short: "Print the reciprocal divider constants of D",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width := a.v.GetUint("divider.width")

			d, err := strconv.ParseUint(args[0], 0, int(width))
			if err != nil {
				return Error.New("invalid divisor %q for width %d", args[0], width)
			}

			out := cmd.OutOrStdout()

			switch width {
			case 8:
				return printDivider(out, uint8(d))
			case 16:
				return printDivider(out, uint16(d))
			case 32:
				return printDivider(out, uint32(d))
			case 64:
				return printDivider(out, d)
			}

			return Error.New("invalid width: %d", width)
		},
	}

	cmd.Flags().Uint("width", 64, "Word width in bits (8, 16, 32, 64)")
	a.bind(cmd.Flags(), "divider.width", "width")

	return cmd
}

func printDivider[W word.Word](w io.Writer, d W) error {
	divider, ok := word.NewDivider(d)
	if !ok {
		return Error.New("division by zero")
	}

	divider21, _ := word.NewDivider21(d)

	_, err := fmt.Fprintf(w, "divisor=%d multiplier=%#x add=%t shift=%d\n",
		divider.Divisor, divider.Multiplier, divider.Add, divider.Shift)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "normalized=%#x shift=%d reciprocal=%#x\n",
		divider21.Normalized, divider21.Shift, divider21.Reciprocal)

	return err
}
