// ==============================================================================================
// FILE: cmd/slimrender/eval.go
// ==============================================================================================
// PACKAGE: main (cmd/slimrender)
// PURPOSE: `slimrender eval EXPR [--data FILE]` — evaluates one expression and prints its
//          inspect form, grounded on go-dws's run.go `-e`/`--eval` inline-expression flag.
// ==============================================================================================

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightonlang/slimexpr/render"
)

var evalDataPath string

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate one expression and print its inspect form",
	Long: `Evaluate a single expression against an optional JSON view-model.

Examples:
  slimrender eval "[1,2,3,4,5].select { |n| n % 2 == 0 }"
  slimrender eval "user.name.upcase" --data model.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&evalDataPath, "data", "", "path to a JSON file supplying the view-model")
}

func runEval(_ *cobra.Command, args []string) error {
	model, err := loadViewModel(evalDataPath)
	if err != nil {
		return err
	}
	result, err := render.Eval(args[0], model)
	if err != nil {
		return fmt.Errorf("eval failed: %w", err)
	}
	fmt.Println(result.Inspect())
	return nil
}
