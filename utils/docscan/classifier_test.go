package docscan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPageDeclarations(t *testing.T) {
	c := NewClassifier()

	for phrase, want := range map[string]string{
		"(Dollars in Thousands)": "1000",
		"(in Millions)":          "1000000",
		"($thousands)":           "1000",
		"(amounts in billions)":  "1000000000",
		"Dollars in Trillions":   "1000000000000",
	} {
		cls := c.Classify(phrase)
		assert.Equal(t, KindScale, cls.Kind, "phrase: %q", phrase)
		assert.Equal(t, ScopePage, cls.Scope, "phrase: %q", phrase)
		assert.Equal(t, want, cls.Multiplier.String(), "phrase: %q", phrase)
	}
}

func TestClassifyBareScaleWordIsRowScope(t *testing.T) {
	c := NewClassifier()

	cls := c.Classify("in millions")

	assert.Equal(t, KindScale, cls.Kind)
	assert.Equal(t, ScopeRow, cls.Scope)
	assert.Equal(t, "1000000", cls.Multiplier.String())
}

func TestClassifyCancellationTerms(t *testing.T) {
	c := NewClassifier()

	for _, phrase := range []string{
		"Rate", "Interest Rate (%)", "Percentage of total", "Number of employees", "Head count",
	} {
		cls := c.Classify(phrase)
		assert.Equal(t, KindCancel, cls.Kind, "phrase: %q", phrase)
	}
}

func TestClassifyUnknownPhraseIsInert(t *testing.T) {
	c := NewClassifier()

	for _, phrase := range []string{"Revenue", "Total liabilities", "", "(in furlongs)"} {
		cls := c.Classify(phrase)
		assert.Equal(t, KindNone, cls.Kind, "phrase: %q", phrase)
	}
}

func TestClassifyAmbiguousVocabularyIsInert(t *testing.T) {
	// "rate" configured as both a scale word and a cancellation term
	// matches more than one rule, so it must have no effect at all.
	scales := map[string]decimal.Decimal{
		"rate":    decimal.New(1, 2),
		"million": decimal.New(1, 6),
	}
	c := NewClassifierWith(scales, []string{"rate", "percent"})

	assert.Equal(t, KindNone, c.Classify("(in rates)").Kind)
	assert.Equal(t, KindNone, c.Classify("Rate").Kind)
	assert.Equal(t, KindScale, c.Classify("(in millions)").Kind)
	assert.Equal(t, KindCancel, c.Classify("Percent").Kind)
}

func TestPageDeclarationLastOneWins(t *testing.T) {
	c := NewClassifier()

	phrase, mult, ok := c.PageDeclaration("(in Thousands) unless noted (in Millions)")

	require.True(t, ok)
	assert.Equal(t, "(in Millions)", phrase)
	assert.Equal(t, "1000000", mult.String())
}

func TestPageDeclarationKeepsParenthesizedPhrase(t *testing.T) {
	c := NewClassifier()

	// The bare "dollars in X" shape also matches inside the parenthesized
	// form; the reported phrase must be the full outer one.
	phrase, mult, ok := c.PageDeclaration("Consolidated Balance Sheet (Dollars in Thousands)")

	require.True(t, ok)
	assert.Equal(t, "(Dollars in Thousands)", phrase)
	assert.Equal(t, "1000", mult.String())
}

func TestMultiplierPluralAndCase(t *testing.T) {
	c := NewClassifier()

	m, ok := c.Multiplier("Thousands")
	require.True(t, ok)
	assert.Equal(t, "1000", m.String())

	_, ok = c.Multiplier("lakhs")
	assert.False(t, ok)
}

func TestCancellationNeedsWordBoundary(t *testing.T) {
	c := NewClassifier()

	assert.True(t, c.IsCancellation("Growth rate"))
	assert.False(t, c.IsCancellation("Concentrated holdings"))
	assert.True(t, c.IsCancellation("Margin (%)"))
}
