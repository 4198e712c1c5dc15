// Package processor runs a search task through the matcher and fingerprints the output
package processor

import (
	"context"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) Process(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: []string{},
	}

	select {
	case <-ctx.Done():
	default:
		result.Output = matcher.Search(task.Query, task.Corpus, model.PolicyFor(task.IgnoreCase))
	}

	// считаем общий хеш
	result.Hash = Hash(result.Output)

	return &result
}

// Hash returns the xxhash64 of the lines as they are printed: each one followed by '\n'.
func Hash(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
