package main

import (
	"fmt"
	"os"

	pollforecast "github.com/baditaflorin/go_poll_forecast"
	"github.com/baditaflorin/go_poll_forecast/internal/adapters/logger"
	"github.com/baditaflorin/go_poll_forecast/internal/adapters/normalizer"
	"github.com/baditaflorin/go_poll_forecast/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the configuration shared by every subcommand.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "pollcheck",
		Short:         "Validate and tally poll-data forecasts",
		Long:          "pollcheck checks poll-data strings such as CT5D,NY9R17D1I,VT and tallies projected seats per party.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("normalizer", "default", "Case normalizer: default, fast or unicode")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log to stderr")

	_ = a.v.BindPFlag("normalizer", rootCmd.PersistentFlags().Lookup("normalizer"))
	_ = a.v.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = a.v.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	_ = a.v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	a.v.SetEnvPrefix("POLLCHECK")
	a.v.AutomaticEnv()

	rootCmd.AddCommand(
		a.newValidateCmd(),
		a.newTallyCmd(),
		a.newTotalsCmd(),
		a.newServeCmd(),
	)
	return rootCmd
}

// newLogger builds the logger selected by configuration. Without a log
// file or --verbose nothing is logged so results stay readable.
func (a *app) newLogger() (ports.Logger, error) {
	settings := logger.Settings{
		File: a.v.GetString("log_file"),
		JSON: a.v.GetBool("json_logs"),
	}
	if settings.File == "" && !a.v.GetBool("verbose") {
		return logger.NewNopLogger(), nil
	}
	if settings.File == "" {
		settings.Output = os.Stderr
	}
	return logger.New(settings)
}

// newChecker builds a checker from configuration. The caller closes it.
func (a *app) newChecker() (*pollforecast.Checker, ports.Logger, error) {
	normalizerType, err := normalizer.ParseNormalizerType(a.v.GetString("normalizer"))
	if err != nil {
		return nil, nil, err
	}
	log, err := a.newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	checker, err := pollforecast.New(
		pollforecast.WithPortsLogger(log),
		pollforecast.WithNormalizerType(normalizerType),
	)
	if err != nil {
		_ = log.Close()
		return nil, nil, err
	}
	return checker, log, nil
}
