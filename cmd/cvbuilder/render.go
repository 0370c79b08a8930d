package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/preview"
	"github.com/jonathan/cv-builder/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV JSON file to a print-ready HTML document",
	Long:  "Reads a CV document from a JSON file and writes the same HTML the preview endpoint serves, for offline export.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to CV JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (defaults to stdout)")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a summary of the document before rendering")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read CV file %s: %w", renderInputFile, err)
	}

	var data types.CVData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse CV JSON: %w", err)
	}

	if renderVerbose {
		observability.NewPrinter(os.Stderr).PrintSummary(data)
	}

	renderer, err := preview.NewRenderer()
	if err != nil {
		return err
	}

	html, err := renderer.Render(data)
	if err != nil {
		return err
	}

	if renderOutputFile == "" {
		fmt.Println(html)
		return nil
	}

	if err := os.WriteFile(renderOutputFile, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", renderOutputFile, err)
	}

	fmt.Printf("Wrote %s\n", renderOutputFile)
	return nil
}
