// ==============================================================================================
// FILE: cmd/slimrender/repl_cmd.go
// ==============================================================================================
// PACKAGE: main (cmd/slimrender)
// PURPOSE: `slimrender repl` — launches the interactive console.
// ==============================================================================================

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brightonlang/slimexpr/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive expression console",
	Run: func(_ *cobra.Command, _ []string) {
		repl.Start(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
