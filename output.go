package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// renderResults formats results as the printable output text: one line per
// result, `<count>` for single-source runs and `<count> <path>` for
// list-shaped runs, in input order.
func renderResults(results []Result, named bool) string {
	var builder strings.Builder
	for _, r := range results {
		if named {
			builder.WriteString(fmt.Sprintf("%d %s\n", r.Count, r.Path))
		} else {
			builder.WriteString(fmt.Sprintf("%d\n", r.Count))
		}
	}
	return builder.String()
}

// summarize aggregates a batch of results.
func summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.TotalSources++
		s.TotalBytes += r.Bytes
	}
	return s
}

// emitResults sends the rendered results to the selected destination:
// a PDF report, a text file, the clipboard, or stdout.
func emitResults(results []Result, named bool) error {
	if pdfOutputFile != "" {
		return generatePDF(results, summarize(results), pdfOutputFile)
	}

	output := renderResults(results, named)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		return nil
	}
	if copyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error writing to clipboard: %v\n", err)
			fmt.Print(output)
		}
		return nil
	}
	fmt.Print(output)
	return nil
}
