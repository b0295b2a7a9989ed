package docscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeCurrencyAndSeparators(t *testing.T) {
	tok := NewTokenizer(nil, nil)

	tokens := tok.Tokenize("Total assets were $1,234.56 at year end")

	require.Len(t, tokens, 1)
	assert.Equal(t, "1234.56", tokens[0].Magnitude.String())
	assert.False(t, tokens[0].Negative)
	assert.False(t, tokens[0].Percent)
}

func TestTokenizeParenthesizedNegative(t *testing.T) {
	tok := NewTokenizer(nil, nil)

	tokens := tok.Tokenize("Net loss (1,200)")

	require.Len(t, tokens, 1)
	assert.Equal(t, "1200", tokens[0].Magnitude.String())
	assert.True(t, tokens[0].Negative)
}

func TestTokenizeLeadingMinus(t *testing.T) {
	tok := NewTokenizer(nil, nil)

	tokens := tok.Tokenize("Adjustment -500.25")

	require.Len(t, tokens, 1)
	assert.Equal(t, "500.25", tokens[0].Magnitude.String())
	assert.True(t, tokens[0].Negative)
}

func TestTokenizePercent(t *testing.T) {
	tok := NewTokenizer(nil, nil)

	tokens := tok.Tokenize("Effective rate 4.2%")

	require.Len(t, tokens, 1)
	assert.Equal(t, "4.2", tokens[0].Magnitude.String())
	assert.True(t, tokens[0].Percent)
}

func TestTokenizeInlineMultiplierWord(t *testing.T) {
	tok := NewTokenizer(nil, nil)

	tokens := tok.Tokenize("raised approximately $5.2 million in new debt")

	require.Len(t, tokens, 1)
	assert.Equal(t, "million", tokens[0].InlineWord)
	assert.Equal(t, "1000000", tokens[0].InlineMultiplier.String())
}

func TestTokenizeBareNumberAfterProse(t *testing.T) {
	rec := &recordingReporter{}
	tok := NewTokenizer(nil, rec)

	// A value at the end of a narrative sentence is separated from the
	// preceding word by ordinary whitespace and must survive adjacency
	// validation.
	tokens := tok.Tokenize("Operating income of 3")

	require.Len(t, tokens, 1)
	assert.Equal(t, "3", tokens[0].Magnitude.String())
	assert.Equal(t, "3", tokens[0].Raw)
	assert.Empty(t, rec.rejected)
}

func TestTokenizeMultipleValuesInOneLine(t *testing.T) {
	tok := NewTokenizer(nil, nil)

	tokens := tok.Tokenize("cash 1,500 and equivalents 2,750.10")

	require.Len(t, tokens, 2)
	assert.Equal(t, "1500", tokens[0].Magnitude.String())
	assert.Equal(t, "2750.10", tokens[1].Magnitude.String())
}

func TestTokenizeRejectsDatesAndMalformed(t *testing.T) {
	tok := NewTokenizer(nil, nil)

	// None of these may ever become a token: a wrong match here would
	// silently corrupt the reported maximum.
	for _, text := range []string{
		"as of 12/31/2024",
		"filed 2024-01-15",
		"version 1.2.3",
		"subtotal 1,23",
		"opened at 9:30",
		"ref A1024B",
		"shortform 750k not supported",
		",",
	} {
		assert.Empty(t, tok.Tokenize(text), "input: %q", text)
	}
}

func TestTokenizeKeepsPlainYear(t *testing.T) {
	tok := NewTokenizer(nil, nil)

	tokens := tok.Tokenize("During fiscal 2024 revenue grew")

	require.Len(t, tokens, 1)
	assert.Equal(t, "2024", tokens[0].Magnitude.String())
}

func TestTokenizeReportsRejections(t *testing.T) {
	rec := &recordingReporter{}
	tok := NewTokenizer(nil, rec)

	tok.Tokenize("as of 12/31/2024")

	assert.NotEmpty(t, rec.rejected)
}
