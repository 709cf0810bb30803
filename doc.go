package shapecheck

// Package shapecheck validates JSON-shaped data against declarative schemas:
//
// - Shorthand surface schemas (bare type tags, map literals, slice shorthand)
//   normalized into one canonical Schema tree
// - A recursive engine producing ordered, path-qualified ValidationErrors
//   (dotted keys, bracketed indexes), never panicking and never failing fast
// - Union (oneOf) dispatch with first-match semantics, optional fields,
//   allowedValues restrictions, and strict/permissive unknown-key handling
//
// Design policy:
// - Keep only public APIs in the root package; builders live under dsl/,
//   input decoding under source/, message catalogs under i18n/.
// - All configuration is per call via Opt; no package-level mutable state.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := map[string]any{"name": shapecheck.TypeString, "age": shapecheck.TypeNumber}
//	errs := shapecheck.Validate(data, schema)
//	if len(errs) > 0 {
//		fmt.Println(shapecheck.FormatErrors(errs))
//	}
