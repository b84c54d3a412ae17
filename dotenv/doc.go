// Package dotenv locates and parses .env files.
//
// [Find] walks from a directory up to the filesystem root looking for a
// file, and [Parse] turns file contents into a lazy sequence of [Entry]
// values and [*ParseError] values, one per meaningful line:
//
//	# comment
//	export NAME=value         # trailing comment
//	SINGLE='kept $verbatim'
//	DOUBLE="line\nbreak"
//	EMPTY=
//
// Blank lines and lines starting with '#' yield nothing. An unquoted value
// runs to the end of the line or to a '#' preceded by whitespace, with
// trailing whitespace removed. Single-quoted values are literal.
// Double-quoted values accept the escapes \n \r \t \" and \\ and reject any
// other. Quoted values end on the line they start.
//
// The sequence keeps duplicates in file order. [Fold] and [Dedupe] apply
// last-write-wins semantics, and [Load] and [Lookup] apply a file to an
// environment.
package dotenv
