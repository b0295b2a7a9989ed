package docscan

import "github.com/shopspring/decimal"

var one = decimal.New(1, 0)

// ScopeResolver carries the active page-level multiplier through a document
// walk and resolves the effective multiplier for each row or line.
//
// The active multiplier persists across pages until redeclared: real
// documents state "(Dollars in Thousands)" once near a table and expect it
// to keep applying to later pages. The resolver starts unscaled.
type ScopeResolver struct {
	classifier *Classifier
	reporter   Reporter

	active       decimal.Decimal
	activePhrase string
	activePage   int
}

// NewScopeResolver builds a resolver with multiplier 1 active.
func NewScopeResolver(c *Classifier, r Reporter) *ScopeResolver {
	if c == nil {
		c = NewClassifier()
	}
	if r == nil {
		r = NopReporter{}
	}
	return &ScopeResolver{classifier: c, reporter: r, active: one}
}

// ActiveMultiplier returns the current page-level multiplier.
func (s *ScopeResolver) ActiveMultiplier() decimal.Decimal { return s.active }

// ActivePhrase returns the phrase that set the current multiplier, or ""
// when no declaration has been seen.
func (s *ScopeResolver) ActivePhrase() string { return s.activePhrase }

// ObserveText scans free text or a table header cell for a page-scope scale
// declaration and updates the active multiplier immediately. With several
// declarations in one stretch of text the last one in document order wins.
func (s *ScopeResolver) ObserveText(page int, text string) {
	phrase, mult, ok := s.classifier.PageDeclaration(text)
	if !ok {
		return
	}
	if !mult.Equal(s.active) || phrase != s.activePhrase {
		s.reporter.MultiplierChanged(page, phrase, mult)
	}
	s.active = mult
	s.activePhrase = phrase
	s.activePage = page
}

// ResolveLine returns the effective multiplier for one free-text line.
// A cancellation term anywhere in the line drops the inherited scale for
// that line only, unless the same line also carries an explicit
// declaration, which is more specific than the cancellation label.
func (s *ScopeResolver) ResolveLine(text string) decimal.Decimal {
	if s.classifier.IsCancellation(text) {
		if _, _, ok := s.classifier.PageDeclaration(text); !ok {
			return one
		}
	}
	return s.active
}

// ResolveRow returns the effective multiplier for one table data row.
// Precedence, most specific first: a scale declaration inside the row, then
// a cancellation term on the row label, then the inherited page multiplier.
// The result applies to this row only and never persists.
func (s *ScopeResolver) ResolveRow(cells []string) decimal.Decimal {
	for _, cell := range cells {
		if _, mult, ok := s.classifier.RowDeclaration(cell); ok {
			return mult
		}
	}
	if label := rowLabel(cells); label != "" && s.classifier.IsCancellation(label) {
		return one
	}
	return s.active
}

// rowLabel returns the first non-empty cell, which names what the row's
// values are.
func rowLabel(cells []string) string {
	for _, cell := range cells {
		if cell != "" {
			return cell
		}
	}
	return ""
}
