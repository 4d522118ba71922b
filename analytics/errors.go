/*
errors.go - Error types for the analytics engine

PURPOSE:
  The engine has exactly one failure mode: input validation. Everything after
  validation follows a skip-and-continue / coerce-to-zero policy and never
  aborts the batch.

ERROR CATEGORIES:
  1. Validation errors - malformed top-level input, fatal, raised before any
     accumulation starts
  2. Soft data errors - malformed sellers/products/receipts/items; absorbed
     silently, never surfaced

USAGE:
  rows, err := analytics.Analyze(data, opts)
  var verr *analytics.ValidationError
  if errors.As(err, &verr) {
      // verr.Field names the offending input
  }

SEE ALSO:
  - validate.go: Where these are raised
*/
package analytics

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by every ValidationError.
// Use with errors.Is().
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports a fatal input shape violation. Field identifies the
// offending input ("data", "sellers", "products", "purchase_records",
// "options", "calculateRevenue", "calculateBonus").
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
