package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/brack/vm"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var log zerolog.Logger

func main() {
	root := &cobra.Command{
		Use:   "brack [file]",
		Short: "Compile and run programs on the brack virtual machine",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig(cmd)
		},
		RunE:          runHandler,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	runFlags := root.Flags()
	runFlags.StringP("input", "i", "", "Input bytes for the program")
	runFlags.String("input-file", "", "Read program input from a file")
	runFlags.Bool("profile", false, "Print a hot-loop report after the run")
	runFlags.Bool("no-opt", false, "Disable peephole optimization")
	runFlags.Bool("timing", false, "Show execution time")
	runFlags.StringP("output", "o", "text", "Output format: text or json")

	root.AddCommand(
		newDisCommand(),
		newAstCommand(),
		newFmtCommand(),
		newCheckCommand(),
		newVersionCommand(),
	)

	// Ctrl-C cancels the run context, which interrupts divergent programs.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errString(err))
		os.Exit(1)
	}
}

// initConfig wires viper to the optional ~/.brack.yaml config file and
// BRACK_* environment variables, then prepares the logger.
func initConfig(cmd *cobra.Command) {
	viper.SetConfigName(".brack")
	viper.SetConfigType("yaml")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("brack")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("profile.threshold", 100)
	viper.SetDefault("vm.check-interval", vm.DefaultContextCheckInterval)

	// Config file is optional
	_ = viper.ReadInConfig()

	rootFlags := cmd.Root().PersistentFlags()
	_ = viper.BindPFlag("no-color", rootFlags.Lookup("no-color"))

	level := zerolog.WarnLevel
	if verbose, _ := rootFlags.GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: viper.GetBool("no-color"),
	}).Level(level).With().Timestamp().Logger()
}
