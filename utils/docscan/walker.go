package docscan

import "github.com/shopspring/decimal"

// Normalize applies the effective multiplier and the token's sign.
// A multiplier word bound directly to the number beats the row multiplier.
// The applied multiplier is returned alongside the value for provenance.
// A percent sign on the token carries no multiplier of its own; percent
// rows stay unscaled through the cancellation vocabulary, not here.
func Normalize(tok NumericToken, rowMultiplier decimal.Decimal) (value, applied decimal.Decimal) {
	applied = rowMultiplier
	if tok.InlineWord != "" {
		applied = tok.InlineMultiplier
	}
	value = tok.Magnitude.Mul(applied)
	if tok.Negative {
		value = value.Neg()
	}
	return value, applied
}

// Walker runs the whole pipeline over an extracted document: scope
// resolution, tokenizing, normalization and maximum tracking, page by page
// in document order. The walk is deterministic; the same document always
// yields the same result.
type Walker struct {
	classifier *Classifier
	tokenizer  *Tokenizer
	reporter   Reporter
}

// NewWalker builds a walker with the default vocabulary.
func NewWalker(r Reporter) *Walker {
	return NewWalkerWith(NewClassifier(), r)
}

// NewWalkerWith builds a walker around an explicit classifier, so callers
// can extend the modifier vocabulary.
func NewWalkerWith(c *Classifier, r Reporter) *Walker {
	if c == nil {
		c = NewClassifier()
	}
	if r == nil {
		r = NopReporter{}
	}
	return &Walker{
		classifier: c,
		tokenizer:  NewTokenizer(c, r),
		reporter:   r,
	}
}

// Scan walks the document and returns the highest normalized value with its
// provenance. A document with no numeric tokens returns Found=false.
func (w *Walker) Scan(doc Document) Result {
	scope := NewScopeResolver(w.classifier, w.reporter)
	tracker := NewMaxTracker(w.reporter)

	for _, page := range doc.Pages {
		w.reporter.PageStarted(page.Number)
		row := 0
		for _, block := range page.Blocks {
			if block.Table != nil {
				row = w.scanTable(scope, tracker, page.Number, row, block.Table)
			} else {
				w.scanLine(scope, tracker, page.Number, row, block.Line)
				row++
			}
		}
	}

	return tracker.Result()
}

func (w *Walker) scanLine(scope *ScopeResolver, tracker *MaxTracker, page, row int, line string) {
	// A declaration on the line applies to the line's own values too.
	scope.ObserveText(page, line)
	mult := scope.ResolveLine(line)

	for _, tok := range w.tokenizer.Tokenize(line) {
		tok.Page, tok.Row = page, row
		value, applied := Normalize(tok, mult)
		tracker.Observe(value, page, row, tok.Raw, applied)
	}
}

func (w *Walker) scanTable(scope *ScopeResolver, tracker *MaxTracker, page, row int, table [][]string) int {
	if len(table) == 0 {
		return row
	}

	// The header row declares scales, it does not hold values. A context
	// phrase ("(Dollars in Thousands)") acts at page scope; a bare scale
	// word in a header cell scales that column for this table only.
	colMults := make(map[int]decimal.Decimal)
	for col, cell := range table[0] {
		if _, _, ok := w.classifier.PageDeclaration(cell); ok {
			scope.ObserveText(page, cell)
			continue
		}
		if _, m, ok := w.classifier.RowDeclaration(cell); ok {
			colMults[col] = m
		}
	}
	row++

	for _, cells := range table[1:] {
		rowMult := scope.ResolveRow(cells)
		for col, cell := range cells {
			if cell == "" {
				continue
			}
			eff := rowMult
			if m, ok := colMults[col]; ok {
				eff = m
			}
			for _, tok := range w.tokenizer.Tokenize(cell) {
				tok.Page, tok.Row, tok.Col = page, row, col
				value, applied := Normalize(tok, eff)
				tracker.Observe(value, page, row, tok.Raw, applied)
			}
		}
		row++
	}

	return row
}
