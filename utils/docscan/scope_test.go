package docscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeResolverStartsUnscaled(t *testing.T) {
	s := NewScopeResolver(nil, nil)

	assert.Equal(t, "1", s.ActiveMultiplier().String())
	assert.Equal(t, "1", s.ResolveLine("Total revenue 1,500").String())
}

func TestScopeResolverPicksUpPageDeclaration(t *testing.T) {
	s := NewScopeResolver(nil, nil)

	s.ObserveText(1, "Consolidated Balance Sheet (Dollars in Thousands)")

	assert.Equal(t, "1000", s.ActiveMultiplier().String())
	assert.Equal(t, "(Dollars in Thousands)", s.ActivePhrase())
}

func TestScopeResolverRedeclarationOverwrites(t *testing.T) {
	s := NewScopeResolver(nil, nil)

	s.ObserveText(1, "(in Thousands)")
	s.ObserveText(2, "(in Millions)")

	assert.Equal(t, "1000000", s.ActiveMultiplier().String())
}

func TestScopeResolverIgnoresNarrativeText(t *testing.T) {
	s := NewScopeResolver(nil, nil)

	// A bare scale word in prose is not a page declaration.
	s.ObserveText(1, "millions of customers visited our stores")

	assert.Equal(t, "1", s.ActiveMultiplier().String())
}

func TestResolveRowCancellation(t *testing.T) {
	s := NewScopeResolver(nil, nil)
	s.ObserveText(1, "(Dollars in Thousands)")

	assert.Equal(t, "1", s.ResolveRow([]string{"Interest Rate", "4.2"}).String())
	assert.Equal(t, "1000", s.ResolveRow([]string{"Total revenue", "12.5"}).String())
}

func TestResolveRowDeclarationBeatsCancellation(t *testing.T) {
	s := NewScopeResolver(nil, nil)
	s.ObserveText(1, "(Dollars in Thousands)")

	m := s.ResolveRow([]string{"Rate (in Millions)", "4.2"})

	assert.Equal(t, "1000000", m.String())
}

func TestResolveRowDoesNotPersist(t *testing.T) {
	s := NewScopeResolver(nil, nil)
	s.ObserveText(1, "(Dollars in Thousands)")

	s.ResolveRow([]string{"Rate", "4.2"})

	// The cancellation applied to that row only.
	assert.Equal(t, "1000", s.ResolveRow([]string{"Cash", "9"}).String())
	assert.Equal(t, "1000", s.ActiveMultiplier().String())
}

func TestResolveLineCancellation(t *testing.T) {
	s := NewScopeResolver(nil, nil)
	s.ObserveText(1, "(in Millions)")

	assert.Equal(t, "1", s.ResolveLine("Effective tax rate of 21").String())
	assert.Equal(t, "1000000", s.ResolveLine("Operating income of 12").String())
}
