// Package matcher finds the lines of a corpus that contain the query, with or without case folding.
//
// Returned lines are substrings of the corpus: they share its memory and must not outlive it by contract.
package matcher

import (
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// Search выбирает вариант поиска по CasePolicy
func Search(query, corpus string, policy model.CasePolicy) []string {
	switch policy {
	case model.CaseInsensitive:
		return SearchInsensitive(query, corpus)
	default:
		return SearchSensitive(query, corpus)
	}
}

// SearchSensitive returns every line that contains query byte-for-byte.
func SearchSensitive(query, corpus string) []string {
	return filter(corpus, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchInsensitive lowercases query and each line independently before the containment test.
func SearchInsensitive(query, corpus string) []string {
	query = strings.ToLower(query)
	return filter(corpus, func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

// Lines splits corpus on "\n" and "\r\n". A final line ending does not
// produce an extra empty line; a bare '\r' not followed by '\n' stays in the line.
func Lines(corpus string) []string {
	result := []string{}
	for len(corpus) > 0 {
		i := strings.IndexByte(corpus, '\n')
		if i < 0 {
			result = append(result, corpus)
			break
		}
		// '\r' отрезаем только перед '\n'
		result = append(result, strings.TrimSuffix(corpus[:i], "\r"))
		corpus = corpus[i+1:]
	}
	return result
}

func filter(corpus string, match func(line string) bool) []string {
	result := []string{}
	for _, line := range Lines(corpus) {
		if match(line) {
			result = append(result, line)
		}
	}
	return result
}
