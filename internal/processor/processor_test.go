package processor_test

import (
	"context"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	corpus := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."
	cases := []struct {
		name    string
		task    *model.SearchTask
		wantRes *model.SearchResult
		ctx     context.Context
	}{
		{
			name: "Positive - case sensitive",
			task: &model.SearchTask{
				TaskID: "testTask",
				Query:  "rust",
				Corpus: corpus,
			},
			wantRes: &model.SearchResult{
				TaskID: "testTask",
				Output: []string{"Trust me."},
				Hash:   hasher(t, []string{"Trust me."}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - ignore case",
			task: &model.SearchTask{
				TaskID:     "testTask",
				Query:      "rUSt",
				IgnoreCase: true,
				Corpus:     corpus,
			},
			wantRes: &model.SearchResult{
				TaskID: "testTask",
				Output: []string{"Rust:", "Trust me."},
				Hash:   hasher(t, []string{"Rust:", "Trust me."}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - empty query",
			task: &model.SearchTask{
				TaskID: "testTask",
				Corpus: "a\nb",
			},
			wantRes: &model.SearchResult{
				TaskID: "testTask",
				Output: []string{"a", "b"},
				Hash:   hasher(t, []string{"a", "b"}),
			},
			ctx: context.Background(),
		},
		{
			name: "Negative - cancelled context",
			task: &model.SearchTask{
				TaskID: "testTask",
				Query:  "Rust",
				Corpus: corpus,
			},
			wantRes: &model.SearchResult{
				TaskID: "testTask",
				Output: []string{},
				Hash:   hasher(t, []string{}),
			},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			test := processor.Processor{}

			res := test.Process(tt.ctx, tt.task)

			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestHashDistinguishesLineBoundaries(t *testing.T) {
	require.NotEqual(t, processor.Hash([]string{"ab", "c"}), processor.Hash([]string{"a", "bc"}))
	require.Equal(t, processor.Hash([]string{"x"}), processor.Hash([]string{"x"}))
}

func hasher(t *testing.T, input []string) uint64 {
	t.Helper()
	hs := xxhash.New()
	for _, s := range input {
		_, err := hs.WriteString(s + "\n")
		require.NoError(t, err, "failed to write data to count hash")
	}

	return hs.Sum64()
}
