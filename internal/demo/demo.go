// Package demo ties the user roster and the adder together into the
// program's two-line report.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/dusk-indust/sample/internal/calc"
	"github.com/dusk-indust/sample/internal/user"
)

// ErrEmptyRoster is returned by Build when there is no user to report.
var ErrEmptyRoster = errors.New("roster has no users")

// Result is what one run reports.
type Result struct {
	First user.User
	Sum   int32
}

// Build picks the first user of roster and adds a and b.
func Build(roster user.Roster, a, b int32) (Result, error) {
	first, ok := roster.First()
	if !ok {
		return Result{}, ErrEmptyRoster
	}
	return Result{First: first, Sum: calc.Add(a, b)}, nil
}

// Default is the result for the built-in roster and operands 2 and 3.
func Default() Result {
	r, err := Build(user.DefaultRoster(), 2, 3)
	if err != nil {
		// DefaultRoster is never empty.
		panic(err)
	}
	return r
}

// WriteText writes the debug rendering of the user and the sum, one per line.
func WriteText(w io.Writer, r Result) error {
	if _, err := fmt.Fprintln(w, r.First); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	if _, err := fmt.Fprintln(w, r.Sum); err != nil {
		return fmt.Errorf("write sum: %w", err)
	}
	return nil
}
