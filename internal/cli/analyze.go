package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/okometz/vantage/internal/model"
	"github.com/okometz/vantage/internal/pipeline"
	"github.com/okometz/vantage/internal/provider"
	"github.com/spf13/cobra"
)

var (
	outJSON      string
	outMD        string
	timeout      time.Duration
	latency      time.Duration
	explain      bool
	noCache      bool
	noFooter     bool
	providerName string
	providerURL  string
	modelName    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <situation>",
	Short: "Analyze a situation and compose a view for it",
	Long: `Analyze classifies a free-text situation description and composes the
matching view:
- Classify intent and urgency from the text
- Synthesize a composition document from the intent's template
- Validate the document contract
- Arrange visible components by layout (grid, stack, split, overlay)

Example:
  vantage analyze "checkout is down, error rates spiking"
  vantage analyze "why is latency climbing" --md report.md --explain
  vantage analyze "overview of system health" --provider openai --model gpt-4o-mini`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "-", "output JSON path (- for stdout)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional, - for stdout)")
	analyzeCmd.Flags().BoolVar(&explain, "explain", false, "include reasoning in Markdown output")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")

	// Provider flags
	analyzeCmd.Flags().StringVar(&providerName, "provider", "local", "composition provider (local, openai)")
	analyzeCmd.Flags().StringVar(&modelName, "model", "gpt-4o-mini", "remote model name")
	analyzeCmd.Flags().StringVar(&providerURL, "base-url", "", "remote endpoint override")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall analysis timeout")
	analyzeCmd.Flags().DurationVar(&latency, "latency", 400*time.Millisecond, "simulated latency of the local provider")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the remote response cache")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", text)
		fmt.Fprintf(os.Stderr, "Provider: %s\n", providerName)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	result, err := p.AnalyzeSituation(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		doc := result.Document
		if lp, ok := p.Provider().(*provider.LocalProvider); ok {
			c := lp.Classify(text)
			fmt.Fprintf(os.Stderr, "✓ Matched patterns: %s\n", strings.Join(c.Matched, ", "))
		}
		fmt.Fprintf(os.Stderr, "✓ Intent: %s, urgency: %s\n", doc.Reasoning.Intent, doc.Reasoning.Urgency)
		fmt.Fprintf(os.Stderr, "✓ Layout: %s, confidence: %.0f%%\n", doc.Layout, doc.Confidence*100)
		fmt.Fprintf(os.Stderr, "✓ Placed %d of %d components\n",
			len(result.Arrangement.Cells), len(doc.Components))
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	renderer := p.Renderer()
	if outJSON != "" {
		if err := renderer.WriteJSON(result, outJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}
	if outMD != "" {
		if err := renderer.WriteMarkdown(result, outMD, explain || cfg.Output.Explain); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}

	return nil
}

// buildConfig assembles the application config from defaults and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Provider.Name = providerName
	cfg.Provider.Model = modelName
	cfg.Provider.BaseURL = providerURL
	cfg.Analyzer.SimulatedLatency = latency
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if providerName == "openai" {
		cfg.Provider.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Provider.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}
