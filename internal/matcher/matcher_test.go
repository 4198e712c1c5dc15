package matcher_test

import (
	"strings"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		corpus  string
		policy  model.CasePolicy
		wantRes []string
	}{
		{
			name:    "Positive - case sensitive excludes other case",
			query:   "duct",
			corpus:  "Rust:\nsafe, fast, productive.\nPick three.\nI love Duct tape.",
			policy:  model.CaseSensitive,
			wantRes: []string{"safe, fast, productive."},
		},
		{
			name:    "Positive - case insensitive",
			query:   "rUSt",
			corpus:  "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.",
			policy:  model.CaseInsensitive,
			wantRes: []string{"Rust:", "Trust me."},
		},
		{
			name:    "Positive - empty query matches every line",
			query:   "",
			corpus:  "one\ntwo\n\nthree",
			policy:  model.CaseSensitive,
			wantRes: []string{"one", "two", "", "three"},
		},
		{
			name:    "Positive - duplicates preserved, line reported once",
			query:   "ab",
			corpus:  "abab\nxx\nabab",
			policy:  model.CaseSensitive,
			wantRes: []string{"abab", "abab"},
		},
		{
			name:    "Positive - multibyte lines are kept intact",
			query:   "ПРИВЕТ",
			corpus:  "привет, мир\nhello",
			policy:  model.CaseInsensitive,
			wantRes: []string{"привет, мир"},
		},
		{
			name:    "Negative - empty corpus",
			query:   "abc",
			corpus:  "",
			policy:  model.CaseInsensitive,
			wantRes: []string{},
		},
		{
			name:    "Negative - query longer than every line",
			query:   "a much longer query",
			corpus:  "short\nlines",
			policy:  model.CaseSensitive,
			wantRes: []string{},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res := matcher.Search(tt.query, tt.corpus, tt.policy)
			require.Equal(t, tt.wantRes, res)

			// повторный вызов дает тот же результат
			require.Equal(t, res, matcher.Search(tt.query, tt.corpus, tt.policy))
		})
	}
}

func TestSearchInsensitiveIsSuperset(t *testing.T) {
	corpus := "Alpha\nalpha\nALPHA beta\ngamma\nalPha"
	for _, q := range []string{"alpha", "ALPHA", "Pha", "beta", "", "zzz"} {
		sensitive := matcher.SearchSensitive(q, corpus)
		insensitive := matcher.SearchInsensitive(q, corpus)

		for _, line := range sensitive {
			require.Contains(t, insensitive, line, "query %q", q)
		}
		for _, line := range insensitive {
			require.Contains(t, strings.ToLower(line), strings.ToLower(q))
		}
	}
}

func TestLines(t *testing.T) {
	cases := []struct {
		name    string
		corpus  string
		wantRes []string
	}{
		{name: "empty corpus", corpus: "", wantRes: []string{}},
		{name: "no trailing newline", corpus: "a\nb", wantRes: []string{"a", "b"}},
		{name: "trailing newline", corpus: "a\nb\n", wantRes: []string{"a", "b"}},
		{name: "only newline", corpus: "\n", wantRes: []string{""}},
		{name: "crlf", corpus: "a\r\nb\r\n", wantRes: []string{"a", "b"}},
		{name: "blank lines kept", corpus: "a\n\n\nb", wantRes: []string{"a", "", "", "b"}},
		{name: "bare cr at the end is kept", corpus: "a\r", wantRes: []string{"a\r"}},
		{name: "bare cr inside a line is kept", corpus: "a\rb\r\nc", wantRes: []string{"a\rb", "c"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantRes, matcher.Lines(tt.corpus))
		})
	}
}
