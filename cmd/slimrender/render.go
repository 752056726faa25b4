// ==============================================================================================
// FILE: cmd/slimrender/render.go
// ==============================================================================================
// PACKAGE: main (cmd/slimrender)
// PURPOSE: `slimrender render TEMPLATE [--data FILE]` — renders a template file against a
//          JSON-loaded view-model. Grounded on go-dws's run.go (file-or-stdin input handling,
//          RunE error plumbing).
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brightonlang/slimexpr/render"
	"github.com/brightonlang/slimexpr/value"
)

var dataPath string

var renderCmd = &cobra.Command{
	Use:   "render [template file]",
	Short: "Render a template file against a JSON view-model",
	Long: `Render a Slim-style template file.

Examples:
  slimrender render page.slim --data model.json
  slimrender render page.slim`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&dataPath, "data", "", "path to a JSON file supplying the view-model")
}

func runRender(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", args[0], err)
	}

	model, err := loadViewModel(dataPath)
	if err != nil {
		return err
	}

	out, err := render.RenderSource(string(source), model)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Print(out)
	return nil
}

func loadViewModel(path string) (value.ViewModel, error) {
	if path == "" {
		return value.NewMapViewModel(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read view-model %s: %w", path, err)
	}
	model, err := value.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse view-model %s: %w", path, err)
	}
	return model, nil
}
