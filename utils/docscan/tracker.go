package docscan

import "github.com/shopspring/decimal"

// MaxTracker folds every normalized value observed during a walk into a
// single running maximum, keeping the provenance of the current best.
// The running value never decreases, and ties keep the first-seen maximum.
type MaxTracker struct {
	reporter Reporter
	best     Result
}

// NewMaxTracker builds an empty tracker.
func NewMaxTracker(r Reporter) *MaxTracker {
	if r == nil {
		r = NopReporter{}
	}
	return &MaxTracker{reporter: r}
}

// Observe folds one normalized value into the running maximum. Replacement
// happens only on a strictly greater value.
func (t *MaxTracker) Observe(value decimal.Decimal, page, row int, raw string, multiplier decimal.Decimal) {
	if t.best.Found && value.LessThanOrEqual(t.best.Value) {
		return
	}
	t.best = Result{
		Found:      true,
		Value:      value,
		Page:       page,
		Row:        row,
		RawText:    raw,
		Multiplier: multiplier,
	}
	t.reporter.NewMaximum(page, row, raw, value)
}

// Result returns the current maximum. Found is false when nothing was
// observed, the explicit "no value found" outcome.
func (t *MaxTracker) Result() Result { return t.best }
