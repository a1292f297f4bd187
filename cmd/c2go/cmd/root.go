package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left at dev default otherwise.
	Version = "0.1.0-dev"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "c2go",
	Short: "Lower a serialized C AST into Go source",
	Long: `c2go reads a Clang AST dump (JSON or YAML) produced by an external
collaborator and lowers it to a Go source file: declarations, types and
statements are translated structurally, with a small runtime support
package (runtime/cptr, runtime/cnum) standing in for the C operations
Go has no native equivalent for.

c2go never parses C itself — the AST dump is the only input.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
}

// ExitWithError prints a formatted error to stderr and exits 1 — the
// exit path main calls into when Execute itself fails.
func ExitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
