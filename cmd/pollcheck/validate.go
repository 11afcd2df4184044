package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/baditaflorin/go_poll_forecast/internal/adapters/stream"
	"github.com/baditaflorin/go_poll_forecast/internal/core/domain"
	"github.com/spf13/cobra"
)

// errInvalidInput makes the process exit non-zero after results are printed.
var errInvalidInput = errors.New("poll data failed validation")

func (a *app) newValidateCmd() *cobra.Command {
	var (
		file      string
		party     string
		workers   int
		skipBlank bool
	)

	cmd := &cobra.Command{
		Use:   "validate [poll-data...]",
		Short: "Check poll-data strings, from arguments or one per line from a file",
		Example: `  pollcheck validate CT5D,NY9R17D1I,VT ne3r00D
  pollcheck validate --file forecasts.txt --party D --workers 4
  cat forecasts.txt | pollcheck validate --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) == 0 {
				return errors.New("provide poll data as arguments or with --file")
			}
			checker, log, err := a.newChecker()
			if err != nil {
				return err
			}
			defer checker.Close()

			out := cmd.OutOrStdout()
			if file == "" {
				invalid := 0
				for _, pollData := range args {
					if _, err := checker.Parse(pollData); err != nil {
						invalid++
						fmt.Fprintf(out, "INVALID\t%s\t%v\n", pollData, err)
						continue
					}
					fmt.Fprintf(out, "VALID\t%s\n", pollData)
				}
				if invalid > 0 {
					return errInvalidInput
				}
				return nil
			}

			config := stream.Config{Workers: workers, SkipBlank: skipBlank}
			if party != "" {
				if utf8.RuneCountInString(party) != 1 {
					return domain.ErrInvalidPartySelector
				}
				config.Party, _ = utf8.DecodeRuneInString(party)
			}
			validator, err := stream.NewLineValidator(log, checker, config)
			if err != nil {
				return err
			}

			var reader io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				reader = f
			}

			summary, err := validator.Process(cmd.Context(), reader, func(r stream.LineResult) {
				switch {
				case !r.Valid:
					fmt.Fprintf(out, "%d\tINVALID\t%s\t%s\n", r.Line, r.PollData, r.Status)
				case config.Party != 0:
					fmt.Fprintf(out, "%d\tVALID\t%s\t%d\n", r.Line, r.PollData, r.Seats)
				default:
					fmt.Fprintf(out, "%d\tVALID\t%s\n", r.Line, r.PollData)
				}
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "lines=%d valid=%d invalid=%d", summary.Lines, summary.Valid, summary.Invalid)
			if config.Party != 0 {
				fmt.Fprintf(out, " seats=%d", summary.Seats)
			}
			fmt.Fprintln(out)
			if summary.Invalid > 0 {
				return errInvalidInput
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read poll data from a file, one per line (- for stdin)")
	cmd.Flags().StringVarP(&party, "party", "p", "", "Also tally this party letter on each line")
	cmd.Flags().IntVar(&workers, "workers", 1, "Concurrent workers for --file (-1 = one per CPU)")
	cmd.Flags().BoolVar(&skipBlank, "skip-blank", false, "Ignore empty lines in --file input")
	return cmd
}
