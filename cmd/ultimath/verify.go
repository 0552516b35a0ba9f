package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebcase/ultimath/internal/verify"
)

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the dividers and division engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			c := verify.Config{
				Seed:       a.v.GetInt64("verify.seed"),
				Iterations: a.v.GetInt("verify.iterations"),
			}

			for _, s := range a.v.GetStringSlice("verify.widths") {
				w, err := strconv.ParseUint(s, 10, 8)
				if err != nil {
					return Error.New("invalid width %q", s)
				}

				c.Widths = append(c.Widths, uint(w))
			}

			var report verify.Report

			r, err := verify.Dividers(cmd.Context(), a.logger.Named("dividers"), c)
			report.Add(r)
			if err != nil {
				return err
			}

			r, err = verify.Divisions(cmd.Context(), a.logger.Named("divisions"), c)
			report.Add(r)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "checked=%d failures=%d\n", report.Checked, report.Failures)
			if err != nil {
				return err
			}

			if !report.OK() {
				return Error.New("%d of %d checks failed", report.Failures, report.Checked)
			}

			return nil
		},
	}

	widths := []string{}
	for _, w := range verify.Widths {
		widths = append(widths, strconv.FormatUint(uint64(w), 10))
	}

	flags := cmd.Flags()
	flags.Int64("seed", 1, "Seed of the random sources")
	flags.Int("iterations", 10000, "Fuzzed checks per width")
	flags.StringSlice("widths", widths, "Word widths to check")
	a.bind(flags, "verify.seed", "seed")
	a.bind(flags, "verify.iterations", "iterations")
	a.bind(flags, "verify.widths", "widths")

	return cmd
}
