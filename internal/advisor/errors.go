package advisor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lox/preflop-advisor/poker"
)

// ValidationError reports a request field that cannot be evaluated. Err, when
// set, is the underlying parse failure (for example *poker.InvalidHandError
// or poker.ErrUnknownPosition).
type ValidationError struct {
	Field   string
	Value   string
	Reason  string
	Allowed []string
	Err     error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid %s %q", e.Field, e.Value)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, " (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func parseHand(text string) (poker.StartingHand, error) {
	h, err := poker.ParseStartingHand(text)
	if err != nil {
		var he *poker.InvalidHandError
		reason := err.Error()
		if errors.As(err, &he) {
			reason = he.Reason + " (examples: AKs, AJo, 22, AhKh)"
		}
		return poker.StartingHand{}, &ValidationError{Field: "hand", Value: text, Reason: reason, Err: err}
	}
	return h, nil
}

func parsePosition(field, text string, allowed ...poker.Position) (poker.Position, error) {
	p, err := poker.ParsePosition(text)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: text, Allowed: poker.PositionNames(allowed...), Err: err}
	}
	return p, nil
}

func validateStack(stack float64) error {
	if math.IsNaN(stack) || math.IsInf(stack, 0) || stack <= 0 {
		return &ValidationError{
			Field:  "stack",
			Value:  strconv.FormatFloat(stack, 'g', -1, 64),
			Reason: "must be a finite number of big blinds greater than zero",
		}
	}
	return nil
}
