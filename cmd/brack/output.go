package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	prettyjson "github.com/hokaccha/go-prettyjson"
	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/brack/profiler"
)

type runResult struct {
	RunID    string           `json:"run_id"`
	Output   string           `json:"output"`
	HotLoops []profiler.Entry `json:"hot_loops,omitempty"`
}

func printRunResult(cmd *cobra.Command, runID string, output []byte, report profiler.Report) error {
	format, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(format) {
	case "json":
		result := runResult{RunID: runID, Output: string(output)}
		if report != nil {
			result.HotLoops = report.Sorted()
		}
		data, err := formatJSON(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	case "text", "":
		out := cmd.OutOrStdout()
		if _, err := out.Write(output); err != nil {
			return err
		}
		if len(output) > 0 && output[len(output)-1] != '\n' {
			fmt.Fprintln(out)
		}
		if report != nil {
			printReport(cmd, report)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func printReport(cmd *cobra.Command, report profiler.Report) {
	out := cmd.OutOrStdout()
	heading := color.New(color.FgCyan, color.Bold)
	if !colorEnabled() {
		heading.DisableColor()
	}
	heading.Fprintln(out, "hot loops:")
	if len(report) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, entry := range report.Sorted() {
		fmt.Fprintf(out, "  %s -> %d\n", entry.Text, entry.Count)
	}
}

func formatJSON(value any) ([]byte, error) {
	if colorEnabled() {
		return prettyjson.Marshal(value)
	}
	return json.MarshalIndent(value, "", "  ")
}

func colorEnabled() bool {
	if viper.GetBool("no-color") {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func errString(err error) string {
	msg := err.Error()
	c := color.New(color.FgRed)
	if !colorEnabled() {
		return msg
	}
	return c.Sprint(msg)
}
