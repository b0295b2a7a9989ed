package docscan

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// NumericToken is one numeric literal found in a text line or table cell.
// Magnitude is always non-negative; the sign lives in Negative, and a
// parenthesized form like "(1,200)" implies a negative sign.
type NumericToken struct {
	Raw       string
	Magnitude decimal.Decimal
	Negative  bool
	Percent   bool

	// InlineWord is a multiplier word bound directly to the number, as in
	// "5.2 million". It binds tighter than any row or page scale.
	// InlineMultiplier is only valid when InlineWord is non-empty.
	InlineWord       string
	InlineMultiplier decimal.Decimal

	Page int
	Row  int
	Col  int
}

// numberRe matches candidate numeric literals: optional parenthesized
// negative, optional $, thousands separators, optional fraction, optional
// trailing %, optional following word (checked against the scale
// vocabulary afterwards). Candidates still go through adjacency validation
// before they become tokens.
var numberRe = regexp.MustCompile(
	`(\()?(?:\$\s?)?(\d{1,3}(?:,\d{3})+|\d+)(\.\d+)?(\))?(%)?(?:[ \t]+([A-Za-z]+))?`)

// Tokenizer scans lines and cells for numeric tokens. A false positive here
// corrupts the running maximum, so validation prefers dropping a candidate
// over guessing: date fragments, ranges and stray separators never become
// tokens.
type Tokenizer struct {
	classifier *Classifier
	reporter   Reporter
}

// NewTokenizer builds a tokenizer that resolves inline multiplier words
// through the given classifier. A nil reporter discards rejections.
func NewTokenizer(c *Classifier, r Reporter) *Tokenizer {
	if c == nil {
		c = NewClassifier()
	}
	if r == nil {
		r = NopReporter{}
	}
	return &Tokenizer{classifier: c, reporter: r}
}

// Tokenize extracts every valid numeric token from one line or cell.
// Restartable: the same input always yields the same tokens.
func (t *Tokenizer) Tokenize(text string) []NumericToken {
	var tokens []NumericToken

	for _, loc := range numberRe.FindAllStringSubmatchIndex(text, -1) {
		// End of the numeric part proper, excluding any following word.
		numEnd := loc[5] // integer part
		for _, g := range []int{7, 9, 11} {
			if loc[g] > numEnd {
				numEnd = loc[g]
			}
		}

		raw := text[loc[0]:numEnd]

		negative, reason := validateAdjacent(text, loc[0], numEnd)
		if reason != "" {
			t.reporter.CandidateRejected(raw, reason)
			continue
		}

		openParen := loc[2] >= 0
		closeParen := loc[8] >= 0
		if openParen && closeParen {
			negative = true
		}
		if openParen != closeParen {
			// A stray paren belongs to surrounding text, not the number.
			raw = strings.Trim(raw, "()")
		}

		numStr := text[loc[4]:loc[5]]
		if loc[6] >= 0 {
			numStr += text[loc[6]:loc[7]]
		}
		magnitude, err := decimal.NewFromString(strings.ReplaceAll(numStr, ",", ""))
		if err != nil {
			t.reporter.CandidateRejected(raw, "unparseable magnitude")
			continue
		}

		tok := NumericToken{
			Raw:       strings.TrimSpace(raw),
			Magnitude: magnitude,
			Negative:  negative,
			Percent:   loc[10] >= 0,
		}

		if loc[12] >= 0 {
			word := text[loc[12]:loc[13]]
			if m, ok := t.classifier.Multiplier(word); ok {
				tok.InlineWord = word
				tok.InlineMultiplier = m
				tok.Raw = strings.TrimSpace(text[loc[0]:loc[13]])
			}
		}

		tokens = append(tokens, tok)
	}

	return tokens
}

// validateAdjacent inspects the characters around a candidate match.
// Numbers glued to slashes, colons, letters or further digits are date
// fragments, times, identifiers or pieces of a malformed number; none of
// those may reach the maximum, so a non-empty reason discards the
// candidate. A bare leading minus is kept and flips the sign.
func validateAdjacent(text string, start, end int) (negative bool, reason string) {
	if start > 0 {
		switch b := text[start-1]; {
		case b == '/' || b == ':':
			return false, "date or time fragment"
		case b == '.' || b == ',':
			return false, "separator-adjacent"
		case isAlnum(b):
			return false, "embedded in identifier"
		case b == '-':
			if start >= 2 && isDigit(text[start-2]) {
				return false, "range or date fragment"
			}
			negative = true
		}
	}
	if end < len(text) {
		switch b := text[end]; {
		case b == '/' || b == ':':
			return false, "date or time fragment"
		case (b == '.' || b == ',' || b == '-') && end+1 < len(text) && isDigit(text[end+1]):
			return false, "ambiguous separator"
		case isAlpha(b):
			return false, "embedded in identifier"
		}
	}
	return negative, ""
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool { return isDigit(b) || isAlpha(b) }
