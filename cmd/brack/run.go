package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/brack"
	"github.com/deepnoodle-ai/brack/profiler"
	"github.com/deepnoodle-ai/brack/vm"
)

func runHandler(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	filename := args[0]
	source, err := readSource(filename)
	if err != nil {
		return err
	}

	input, err := programInput(cmd)
	if err != nil {
		return err
	}

	runID := uuid.Must(uuid.NewV4())
	logger := log.With().Str("run_id", runID.String()).Logger()

	opts := []brack.Option{brack.WithFilename(filename)}
	if noOpt, _ := cmd.Flags().GetBool("no-opt"); noOpt {
		opts = append(opts, brack.WithoutOptimization())
	}

	compileStart := time.Now()
	code, err := brack.Compile(cmd.Context(), source, opts...)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("instructions", code.InstructionCount()).
		Dur("elapsed", time.Since(compileStart)).
		Msg("compiled")

	profile, _ := cmd.Flags().GetBool("profile")
	var prof *profiler.Profiler
	if profile {
		prof = profiler.New(profiler.WithThreshold(viper.GetInt("profile.threshold")))
	}

	machineOpts := []vm.Option{
		vm.WithInput(input),
		vm.WithContextCheckInterval(viper.GetInt("vm.check-interval")),
	}
	if prof != nil {
		machineOpts = append(machineOpts, vm.WithObserver(prof))
	}
	machine := vm.New(code, machineOpts...)

	runStart := time.Now()
	if err := machine.Run(cmd.Context()); err != nil {
		return err
	}
	elapsed := time.Since(runStart)
	logger.Debug().Dur("elapsed", elapsed).Msg("run complete")

	var report profiler.Report
	if prof != nil {
		report = prof.Report(code)
	}

	if err := printRunResult(cmd, runID.String(), machine.Output(), report); err != nil {
		return err
	}

	if timing, _ := cmd.Flags().GetBool("timing"); timing {
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", elapsed)
	}
	return nil
}

// programInput resolves the input byte stream for the run, from --input,
// --input-file, or empty by default.
func programInput(cmd *cobra.Command) (io.Reader, error) {
	inputText, _ := cmd.Flags().GetString("input")
	inputFile, _ := cmd.Flags().GetString("input-file")
	if inputText != "" && inputFile != "" {
		return nil, fmt.Errorf("--input and --input-file are mutually exclusive")
	}
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return strings.NewReader(inputText), nil
}

func readSource(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
