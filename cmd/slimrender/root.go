// ==============================================================================================
// FILE: cmd/slimrender/root.go
// ==============================================================================================
// PACKAGE: main (cmd/slimrender)
// PURPOSE: The cobra root command, grounded on CWBudde-go-dws's cmd/dwscript/cmd/root.go:
//          persistent flags on the root, one subcommand per verb.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "slimrender",
	Short: "Slim-style template renderer and expression console",
	Long: `slimrender renders indentation-based HTML templates whose embedded
expression language is a small Ruby-flavored scripting dialect (method
calls, blocks, Enumerable combinators) evaluated against a host-supplied
view-model.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
