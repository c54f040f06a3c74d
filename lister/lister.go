// Package lister prints the visible members of a SoC catalog and the
// candidate subset matching a predicate set.
package lister

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/c360studio/soclist/filter"
	"github.com/c360studio/soclist/soc"
)

// Lister writes catalog member names and candidate lines for one
// enumeration source.
type Lister struct {
	source soc.Source
	logger *slog.Logger
}

// New creates a Lister over the given source.
func New(source soc.Source, logger *slog.Logger) *Lister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lister{source: source, logger: logger}
}

// List writes every public member name to w, one per line.
func (l *Lister) List(w io.Writer) error {
	names := l.source.Names()
	l.logger.Debug("listing members", slog.Int("count", len(names)))

	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return fmt.Errorf("write member name: %w", err)
		}
	}
	return nil
}

// ListCandidates writes the labeled candidate line to w. When nothing
// matches, the line reads "candidates: []".
func (l *Lister) ListCandidates(w io.Writer, preds filter.Predicates) error {
	matched := filter.Candidates(l.source.Names(), preds)
	l.logger.Debug("filtered candidates",
		slog.Int("patterns", len(preds)),
		slog.Int("matched", len(matched)))

	if _, err := fmt.Fprintf(w, "candidates: [%s]\n", strings.Join(matched, ", ")); err != nil {
		return fmt.Errorf("write candidate line: %w", err)
	}
	return nil
}

// Run performs the fixed sequence: the full member listing followed by
// the candidate line.
func (l *Lister) Run(w io.Writer, preds filter.Predicates) error {
	if err := l.List(w); err != nil {
		return err
	}
	return l.ListCandidates(w, preds)
}
