// Package appmode provides 2 methods to work in the modes 'search' (one-shot CLI search) and 'serve' (HTTP)
package appmode

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/apperr"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/rs/zerolog"
)

// RunSearch prints the two informational lines, loads cfg.FilePath and writes
// every matching line to out in original order. Read failures come back as apperr.KindIO.
func RunSearch(cfg *model.Config, out io.Writer, log zerolog.Logger) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "Searching for %s\n", cfg.Query)
	fmt.Fprintf(w, "In file %s\n", cfg.FilePath)
	// шапка должна попасть в вывод даже при ошибке чтения
	if err := w.Flush(); err != nil {
		return apperr.IO(err)
	}

	corpus, err := reader.ReadCorpus(cfg.FilePath)
	if err != nil {
		return apperr.IO(err)
	}
	log.Debug().Str("file", cfg.FilePath).Int("bytes", len(corpus)).Msg("corpus loaded")

	res := processor.Processor{}.Process(context.Background(), &model.SearchTask{
		Query:      cfg.Query,
		IgnoreCase: cfg.CasePolicy == model.CaseInsensitive,
		Corpus:     corpus,
	})
	log.Debug().
		Stringer("case", cfg.CasePolicy).
		Int("matches", len(res.Output)).
		Uint64("hash", res.Hash).
		Msg("search finished")

	for _, line := range res.Output {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return apperr.IO(err)
	}
	return nil
}
