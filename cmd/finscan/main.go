package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/finscan/finscan/service"
	"github.com/finscan/finscan/utils/docscan"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "finscan",
		Short: "Find the highest normalized value in a financial document",
		Long: `FinScan scans a financial-style document for numeric values, resolves
unit-scale modifiers like "(Dollars in Thousands)" against row-level
overrides like "Rate" or "Percent", and reports the single largest value
normalized to actual units, with the page and row it came from.`,
		Version: version,
	}

	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	var (
		password   string
		jsonOutput bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze one document and print its highest normalized value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			var reporter docscan.Reporter = docscan.NopReporter{}
			if verbose {
				level := slog.LevelDebug
				logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
				reporter = docscan.SlogReporter{Log: logger}
			}

			svc := service.NewDocumentService(reporter)
			result, err := svc.FindHighestValue(path, data, password)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if !result.Found {
				fmt.Println("No valid numbers were found.")
				return nil
			}

			fmt.Printf("Highest value: %s\n", result.Value)
			fmt.Printf("Found on page %d, row %d: %q\n", result.Page, result.Row, result.RawText)
			fmt.Printf("Multiplier applied: %s\n", result.MultiplierApplied)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password for encrypted PDFs")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log walk progress to stderr")

	return cmd
}
