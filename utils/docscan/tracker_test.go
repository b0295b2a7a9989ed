package docscan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxTrackerEmpty(t *testing.T) {
	tr := NewMaxTracker(nil)

	res := tr.Result()

	assert.False(t, res.Found)
}

func TestMaxTrackerMonotonic(t *testing.T) {
	tr := NewMaxTracker(nil)

	tr.Observe(decimal.New(100, 0), 1, 0, "100", one)
	tr.Observe(decimal.New(50, 0), 1, 1, "50", one)
	tr.Observe(decimal.New(250, 0), 2, 3, "250", one)

	res := tr.Result()
	require.True(t, res.Found)
	assert.Equal(t, "250", res.Value.String())
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.Row)
	assert.Equal(t, "250", res.RawText)
}

func TestMaxTrackerTieKeepsFirst(t *testing.T) {
	tr := NewMaxTracker(nil)

	tr.Observe(decimal.New(100, 0), 1, 0, "first", one)
	tr.Observe(decimal.New(100, 0), 4, 9, "second", one)

	res := tr.Result()
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, "first", res.RawText)
}

func TestMaxTrackerNegativeOnly(t *testing.T) {
	tr := NewMaxTracker(nil)

	tr.Observe(decimal.New(-1200, 0), 1, 0, "(1,200)", one)

	res := tr.Result()
	require.True(t, res.Found)
	assert.Equal(t, "-1200", res.Value.String())
}
