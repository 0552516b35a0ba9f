package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/ultimath/internal/logging"
)

// Error is the error class for command failures.
var Error = errs.Class("ultimath")

// envPrefix is the prefix of the environment variables read by viper.
const envPrefix = "ULTIMATH"

type app struct {
	v      *viper.Viper
	logger *zap.Logger
	cmd    *cobra.Command
}

func newApp() *app {
	a := &app{
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	// For environment variables.
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cmd := &cobra.Command{
		Use:          "ultimath",
		Short:        "Binary integer arithmetic",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.logger, err = logging.New(logging.Config{
				Level:  a.v.GetString("log.level"),
				Format: a.v.GetString("log.format"),
				Writer: cmd.ErrOrStderr(),
			})

			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", "Logging level (debug, info, warn, error)")
	flags.String("log-format", logging.Console, "Logging format (console, json)")
	a.bind(flags, "log.level", "log-level")
	a.bind(flags, "log.format", "log-format")

	cmd.AddCommand(
		a.divideCmd(),
		a.multiplyCmd(),
		a.dividerCmd(),
		a.verifyCmd(),
	)
	a.cmd = cmd

	return a
}

// run executes the command line and flushes the logger, including when the
// command fails.
func (a *app) run(ctx context.Context) error {
	err := a.cmd.ExecuteContext(ctx)
	if err != nil {
		a.logger.Error("command failed", zap.Error(err))
	}

	_ = a.logger.Sync()

	return err
}

// bind makes the flag the source of key.
func (a *app) bind(flags *pflag.FlagSet, key, name string) {
	err := a.v.BindPFlag(key, flags.Lookup(name))
	if err != nil {
		panic(Error.Wrap(err))
	}
}
