package shapecheck

import (
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeInvalidEnum   = "invalid_enum"
	CodeUnknownKey    = "unknown_key"
	CodeUnionMismatch = "union_mismatch"
	CodeInvalidSchema = "invalid_schema"
	CodeMaxDepth      = "max_depth"
)

// ValidationError is a single mismatch between data and schema.
//
// Path addresses the offending value relative to the root: "" for the root
// itself, then dotted keys and bracketed indexes ("a.b", "a[2]", "a.b[0].c").
// Expected and Received are human-oriented descriptors; Code is the
// machine-checkable classification and stays off the wire.
type ValidationError struct {
	Path     string `json:"path"`
	Expected string `json:"expected"`
	Received string `json:"received"`
	Message  string `json:"message"`
	Code     string `json:"-"`
}

// Errors is the ordered outcome of a validation run. Empty means the data
// conforms; there is no other success signal and no failure channel.
type Errors []ValidationError

// Error summarizes the first few entries so Errors can travel as an error
// value across API boundaries.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(es)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		e := es[i]
		fmt.Fprintf(b, "%s at %s", e.Code, pathOrRoot(e.Path))
	}
	if len(es) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(es))
	}
	return b.String()
}

func pathOrRoot(p string) string {
	if p == "" {
		return "root"
	}
	return p
}
