// Package codegen renders parsed .env entries as Go source.
//
// Three emitters share one pipeline: each consumes the sequence returned by
// [dotenv.Parse] or [dotenv.File.Entries], stops at the first parse error,
// renders a template, formats it with go/format and only then writes to its
// writer. A failed emitter writes nothing.
//
//   - [Build] emits an init function that sets each variable in the
//     process environment.
//   - [Module] emits a package of string constants.
//   - [Lookup] emits a single constant, and [Literal] the bare string
//     literal.
//
// Every file starts with the standard "Code generated ... DO NOT EDIT."
// header so tools treat it as generated.
package codegen
