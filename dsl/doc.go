// Package dsl provides fluent builders for canonical shapecheck schemas.
//
// Map-literal shorthand cannot preserve property declaration order in Go, so
// these builders are the way to pin error-emission order exactly:
//
//	s := dsl.Object().
//		Field("name", dsl.String()).
//		Field("age", dsl.Number().Optional()).
//		Closed().
//		Schema()
//	errs := shapecheck.Validate(v, s)
package dsl
