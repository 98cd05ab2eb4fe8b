// Command jerryinspect is a heap/snapshot inspection CLI for the engine
// core, analogous to the teacher's cmd/hivectl: it creates a context,
// optionally runs a scripted sequence of allocations against it (there
// being no parser in this module to load a real script), and reports on
// the resulting heap.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "jerryinspect",
	Short: "Inspect a jerry-go engine heap",
	Long: `jerryinspect creates an engine context, exercises it, and reports on
heap occupancy, garbage collection, and a small built-in allocation trace.
It plays the role the real engine's snapshot/heap dump tooling would play
against a live embedding.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

func main() {
	execute()
}
