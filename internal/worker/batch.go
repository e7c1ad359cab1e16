// Package worker runs batch analysis over many situation descriptions with
// bounded concurrency, preserving input order in the output.
package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/okometz/vantage/internal/pipeline"
)

// Analyzer turns one situation description into an analysis result.
type Analyzer interface {
	AnalyzeSituation(ctx context.Context, text string) (*pipeline.Result, error)
}

// Outcome is the result of one batch entry. Exactly one of Result and Err
// is set. Index is the entry's position in the deduplicated input.
type Outcome struct {
	Index  int
	Text   string
	Result *pipeline.Result
	Err    error
}

// BatchProcessor analyzes many situations concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor. Concurrency below 1 is
// treated as 1.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessTexts analyzes the given situations with bounded concurrency.
// The returned slice is index-aligned with the input: outcome i is always
// the analysis of texts[i], whatever order the work finished in. A failed
// entry never aborts the batch.
func (b *BatchProcessor) ProcessTexts(ctx context.Context, texts []string) []*Outcome {
	outcomes := make([]*Outcome, len(texts))
	if len(texts) == 0 {
		return outcomes
	}

	sem := make(chan struct{}, b.concurrency)
	var wg sync.WaitGroup

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := b.analyzer.AnalyzeSituation(ctx, text)
			outcomes[i] = &Outcome{
				Index:  i,
				Text:   text,
				Result: result,
				Err:    err,
			}
		}(i, text)
	}

	wg.Wait()
	return outcomes
}

// ProcessFile reads situations from a file and analyzes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*Outcome, error) {
	texts, err := ReadSituationsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read situations: %w", err)
	}
	return b.ProcessTexts(ctx, texts), nil
}

// ReadSituationsFromFile reads situation descriptions from a file, one per
// line. Blank lines and lines starting with # are skipped; duplicate lines
// are analyzed once.
func ReadSituationsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var texts []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			texts = append(texts, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return texts, nil
}
