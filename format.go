package shapecheck

import (
	"fmt"
	"strings"
)

// FormatErrors renders a numbered, human-readable report. Pure formatting over
// the error list; no decisions are made here.
func FormatErrors(errs Errors) string {
	if len(errs) == 0 {
		return "No validation errors"
	}
	b := &strings.Builder{}
	for i, e := range errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "%d. at %q: %s (expected %s, received %s)",
			i+1, pathOrRoot(e.Path), e.Message, e.Expected, e.Received)
	}
	return b.String()
}
