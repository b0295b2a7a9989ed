package docscan

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Block is one unit of page content. Exactly one representation is set:
// Table is non-nil for table blocks, otherwise Line holds a free-text line.
// Blocks are kept in top-to-bottom document order so that modifier phrases
// in narrative text just above or below a table are seen before/after it,
// the same way a reader sees them.
type Block struct {
	Line  string
	Table [][]string
}

// TextBlock wraps a free-text line as a Block.
func TextBlock(line string) Block { return Block{Line: line} }

// TableBlock wraps a cell grid as a Block.
func TableBlock(rows [][]string) Block { return Block{Table: rows} }

// Page is one page of extracted content, as delivered by a PageExtractor.
type Page struct {
	Number int // 1-based page number in the source document
	Blocks []Block
}

// Document is the full ordered output of the extraction collaborator.
type Document struct {
	Filename string
	Pages    []Page
}

// Result is the outcome of a document walk. Found is false when the walk
// observed no numeric token anywhere; that is a legitimate outcome, not an
// error, and must not be confused with a real value of zero.
type Result struct {
	Found      bool
	Value      decimal.Decimal
	Page       int
	Row        int
	RawText    string
	Multiplier decimal.Decimal
}

// Reporter receives progress and diagnostic events from a walk. It is
// write-only from the engine's perspective and has no effect on the result.
type Reporter interface {
	PageStarted(page int)
	MultiplierChanged(page int, phrase string, multiplier decimal.Decimal)
	NewMaximum(page, row int, raw string, value decimal.Decimal)
	CandidateRejected(raw, reason string)
}

// NopReporter discards all events. Used when no reporter is injected.
type NopReporter struct{}

func (NopReporter) PageStarted(int) {}

func (NopReporter) MultiplierChanged(int, string, decimal.Decimal) {}

func (NopReporter) NewMaximum(int, int, string, decimal.Decimal) {}

func (NopReporter) CandidateRejected(string, string) {}

// SlogReporter forwards walk events to a structured logger.
type SlogReporter struct {
	Log *slog.Logger
}

func (r SlogReporter) PageStarted(page int) {
	r.Log.Debug("page started", "page", page)
}

func (r SlogReporter) MultiplierChanged(page int, phrase string, multiplier decimal.Decimal) {
	r.Log.Info("page multiplier changed", "page", page, "phrase", phrase, "multiplier", multiplier.String())
}

func (r SlogReporter) NewMaximum(page, row int, raw string, value decimal.Decimal) {
	r.Log.Info("new maximum", "page", page, "row", row, "raw", raw, "value", value.String())
}

func (r SlogReporter) CandidateRejected(raw, reason string) {
	r.Log.Debug("candidate rejected", "raw", raw, "reason", reason)
}
