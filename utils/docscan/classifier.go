package docscan

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// PhraseKind says what effect a modifier phrase has.
type PhraseKind int

const (
	// KindNone marks an inert phrase: unrecognized or ambiguous.
	KindNone PhraseKind = iota
	// KindScale declares a multiplier ("in thousands").
	KindScale
	// KindCancel marks a row as inherently unscaled ("Rate", "Percent").
	KindCancel
)

// PhraseScope says how far a scale declaration reaches.
type PhraseScope int

const (
	// ScopePage applies to every subsequent row until redeclared,
	// including rows on later pages.
	ScopePage PhraseScope = iota
	// ScopeRow applies to a single row only.
	ScopeRow
)

// Classification is the outcome of classifying one phrase.
type Classification struct {
	Kind       PhraseKind
	Scope      PhraseScope
	Multiplier decimal.Decimal
	Phrase     string // the matched text
}

// DefaultScaleWords maps multiplier words (singular form) to their scale.
// Shortform suffixes (K/M/B/T) are deliberately absent: messy extraction
// output makes them false positives more often than real modifiers.
var DefaultScaleWords = map[string]decimal.Decimal{
	"thousand": decimal.New(1, 3),
	"million":  decimal.New(1, 6),
	"billion":  decimal.New(1, 9),
	"trillion": decimal.New(1, 12),
}

// DefaultCancelTerms are row labels whose values must never inherit a page
// or table scale: a count, rate or percentage is already in its final unit.
var DefaultCancelTerms = []string{
	"percentage", "percent", "%", "number", "rate", "ratio", "count",
}

// Classifier matches modifier phrases against a configurable vocabulary.
// Matching is case-insensitive and tolerates surrounding punctuation.
type Classifier struct {
	scales       map[string]decimal.Decimal
	cancels      map[string]bool
	cancelSubstr []string // terms matched by containment, e.g. "%"
	pageRes      []*regexp.Regexp
	wordRe       *regexp.Regexp
	cancelRe     *regexp.Regexp
}

// NewClassifier builds a classifier with the default vocabulary.
func NewClassifier() *Classifier {
	return NewClassifierWith(DefaultScaleWords, DefaultCancelTerms)
}

// NewClassifierWith builds a classifier from an explicit vocabulary, so new
// modifier words can be added without touching the matching logic.
func NewClassifierWith(scales map[string]decimal.Decimal, cancels []string) *Classifier {
	c := &Classifier{
		scales:  make(map[string]decimal.Decimal, len(scales)),
		cancels: make(map[string]bool, len(cancels)),
	}

	// A word configured as both a scale and a cancellation term matches
	// more than one rule. Such a word is dropped from both vocabularies up
	// front: an ambiguous phrase must stay inert, never guessed.
	ambiguous := make(map[string]bool)
	for _, t := range cancels {
		t = strings.ToLower(t)
		if _, clash := scales[t]; clash || scaleHasPlural(scales, t) {
			ambiguous[t] = true
		}
	}

	words := make([]string, 0, len(scales))
	for w, m := range scales {
		w = strings.ToLower(w)
		if ambiguous[w] || ambiguous[w+"s"] {
			continue
		}
		c.scales[w] = m
		words = append(words, regexp.QuoteMeta(w))
	}
	alt := strings.Join(words, "|")

	var cancelWords []string
	for _, t := range cancels {
		t = strings.ToLower(t)
		if ambiguous[t] {
			continue
		}
		c.cancels[t] = true
		if isWordTerm(t) {
			cancelWords = append(cancelWords, regexp.QuoteMeta(t))
		} else {
			c.cancelSubstr = append(c.cancelSubstr, t)
		}
	}

	// Context shapes recognized as page-scope declarations, after the
	// report conventions "(in X)", "($X)", "(Dollars in X)", "Amounts in X".
	if len(words) > 0 {
		c.pageRes = []*regexp.Regexp{
			regexp.MustCompile(`(?i)\(\s*(?:dollars\s+|amounts\s+)?in\s+(` + alt + `)s?\s*\)`),
			regexp.MustCompile(`(?i)\(\s*\$\s*(` + alt + `)s?\s*\)`),
			regexp.MustCompile(`(?i)\b(?:dollars|amounts)\s+in\s+(` + alt + `)s?\b`),
		}
		c.wordRe = regexp.MustCompile(`(?i)\b(` + alt + `)s?\b`)
	}
	if len(cancelWords) > 0 {
		c.cancelRe = regexp.MustCompile(`(?i)\b(?:` + strings.Join(cancelWords, "|") + `)\b`)
	}

	return c
}

func scaleHasPlural(scales map[string]decimal.Decimal, t string) bool {
	if !strings.HasSuffix(t, "s") {
		return false
	}
	_, ok := scales[strings.TrimSuffix(t, "s")]
	return ok
}

func isWordTerm(t string) bool {
	for _, r := range t {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return t != ""
}

// Multiplier resolves a vocabulary word (singular or plural, any case) to
// its scale factor.
func (c *Classifier) Multiplier(word string) (decimal.Decimal, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if m, ok := c.scales[w]; ok {
		return m, true
	}
	if m, ok := c.scales[strings.TrimSuffix(w, "s")]; ok {
		return m, true
	}
	return decimal.Decimal{}, false
}

// PageDeclaration finds a page-scope scale declaration in free text or a
// table header cell. When several declarations appear, the last one in
// document order wins. The shapes overlap: the bare "dollars in X" form
// also matches inside "(Dollars in X)", so ordering goes by where a match
// ends, and of two matches ending together the longer one carries the
// phrase.
func (c *Classifier) PageDeclaration(text string) (phrase string, mult decimal.Decimal, ok bool) {
	bestStart, bestEnd := -1, -1
	for _, re := range c.pageRes {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if loc[1] < bestEnd || (loc[1] == bestEnd && loc[0] >= bestStart) {
				continue
			}
			m, known := c.Multiplier(text[loc[2]:loc[3]])
			if !known {
				continue
			}
			bestStart, bestEnd = loc[0], loc[1]
			phrase = text[loc[0]:loc[1]]
			mult = m
			ok = true
		}
	}
	return phrase, mult, ok
}

// RowDeclaration finds a row-scope scale word inside a data row's cells.
// Inside a data row any recognized scale word counts, parenthesized or not,
// and applies to that row only.
func (c *Classifier) RowDeclaration(text string) (phrase string, mult decimal.Decimal, ok bool) {
	if c.wordRe == nil {
		return "", decimal.Decimal{}, false
	}
	best := -1
	for _, loc := range c.wordRe.FindAllStringSubmatchIndex(text, -1) {
		m, known := c.Multiplier(text[loc[2]:loc[3]])
		if !known {
			continue
		}
		if loc[0] > best {
			best = loc[0]
			phrase = text[loc[0]:loc[1]]
			mult = m
			ok = true
		}
	}
	return phrase, mult, ok
}

// IsCancellation reports whether the text carries a term marking its row as
// unscaled regardless of any inherited page or table multiplier.
func (c *Classifier) IsCancellation(text string) bool {
	if c.cancelRe != nil && c.cancelRe.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	for _, sub := range c.cancelSubstr {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// Classify resolves a single phrase to at most one classification. A fresh
// scale declaration beats a cancellation term found in the same phrase; an
// unrecognized phrase is inert, never an error.
func (c *Classifier) Classify(phrase string) Classification {
	if p, m, ok := c.PageDeclaration(phrase); ok {
		return Classification{Kind: KindScale, Scope: ScopePage, Multiplier: m, Phrase: p}
	}
	if p, m, ok := c.RowDeclaration(phrase); ok {
		return Classification{Kind: KindScale, Scope: ScopeRow, Multiplier: m, Phrase: p}
	}
	if c.IsCancellation(phrase) {
		return Classification{Kind: KindCancel, Scope: ScopeRow, Phrase: phrase}
	}
	return Classification{Kind: KindNone, Phrase: phrase}
}
