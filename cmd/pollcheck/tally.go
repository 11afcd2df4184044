package main

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/baditaflorin/go_poll_forecast/internal/core/domain"
	"github.com/spf13/cobra"
)

func (a *app) newTallyCmd() *cobra.Command {
	var party string

	cmd := &cobra.Command{
		Use:     "tally <poll-data>",
		Short:   "Sum the seats projected for one party",
		Example: "  pollcheck tally --party d CT5D,NY9R17D1I,VT,ne3r00D",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if utf8.RuneCountInString(party) != 1 {
				return domain.ErrInvalidPartySelector
			}
			r, _ := utf8.DecodeRuneInString(party)

			checker, _, err := a.newChecker()
			if err != nil {
				return err
			}
			defer checker.Close()

			seats, err := checker.Tally(args[0], r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&party, "party", "p", "", "Party letter to tally (required)")
	_ = cmd.MarkFlagRequired("party")
	return cmd
}

func (a *app) newTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals <poll-data>",
		Short: "Sum the seats projected for every party",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, _, err := a.newChecker()
			if err != nil {
				return err
			}
			defer checker.Close()

			totals, err := checker.Totals(args[0])
			if err != nil {
				return err
			}
			parties := make([]byte, 0, len(totals))
			for p := range totals {
				parties = append(parties, p)
			}
			sort.Slice(parties, func(i, j int) bool { return parties[i] < parties[j] })
			for _, p := range parties {
				fmt.Fprintf(cmd.OutOrStdout(), "%c\t%d\n", p, totals[p])
			}
			return nil
		},
	}
}
