package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/okometz/vantage/internal/pipeline"
	"github.com/okometz/vantage/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// noFooter and the provider flags are defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple situations from a file in parallel",
	Long: `Batch analyzes multiple situation descriptions concurrently:
- Read situations from the input file (one per line, # for comments)
- Analyze them in parallel with a configurable worker count
- Write one JSON and one Markdown report per situation

Example:
  vantage batch situations.txt
  vantage batch situations.txt --concurrency 8 --output-dir ./reports
  vantage batch situations.txt --provider openai --model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./vantage-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Inherit flags from analyze
	batchCmd.Flags().StringVar(&providerName, "provider", "local", "composition provider (local, openai)")
	batchCmd.Flags().StringVar(&modelName, "model", "gpt-4o-mini", "remote model name")
	batchCmd.Flags().DurationVar(&latency, "latency", 0, "simulated latency of the local provider")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the remote response cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&explain, "explain", false, "include reasoning in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	// Process situations
	fmt.Fprintf(os.Stderr, "⚙️  Analyzing situations with %d workers...\n\n", concurrency)

	processor := worker.NewBatchProcessor(p, concurrency)
	outcomes, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0
	renderer := p.Renderer()

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Text, outcome.Err)
			continue
		}

		successCount++

		slug := situationSlug(outcome.Text, outcome.Index)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.WriteJSON(outcome.Result, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", outcome.Text, err)
			continue
		}
		if err := renderer.WriteMarkdown(outcome.Result, mdPath, explain); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", outcome.Text, err)
			continue
		}

		doc := outcome.Result.Document
		fmt.Fprintf(os.Stderr, "✓ %s (%s/%s, %.0f%%)\n",
			slug, doc.Reasoning.Intent, doc.Layout, doc.Confidence*100)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Total:     %d situations\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "Output:    %s\n", outputDir)

	return nil
}

// situationSlug derives a filesystem-safe name for one batch entry.
func situationSlug(text string, index int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}

	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if len(slug) > 60 {
		slug = slug[:60]
	}
	if slug == "" {
		slug = "situation"
	}

	return fmt.Sprintf("%03d-%s", index+1, slug)
}
