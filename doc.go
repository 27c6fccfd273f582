// Package vaxin provides composable validation and conformation of dynamic data.
//
// Quick Start:
//
//	v := vaxin.NewSchema().
//	    Required("id", vaxin.Number(vaxin.NumberOptions{Checks: []vaxin.NumberCheck{vaxin.GreaterThan(0)}})).
//	    Default("name", vaxin.IsString, "anonymous").
//	    Validator()
//
//	conformed, err := vaxin.Validate(v, payload)
//
// Validators are plain function values built from small parts: standard
// predicates (IsString, IsInteger, ...), built-ins (Number, StringLength,
// Format, Inclusion, ...), structural validators (Key, Each), and the
// combinators Combine, AllOf, and Transform. Validation either fully
// succeeds with a conformed value or fails with a single *Error carrying a
// breadcrumb path to the offending field or element, e.g. "data[3].foo is
// invalid".
//
// See example_test.go and README.md for detailed usage.
package vaxin
