// Package cube parses and validates semantic-layer cube schemas.
//
// A cube schema is a YAML document describing one SQL row set together with
// its measures, dimensions and joins:
//
//	name: Characters
//	sql: select * from characters
//	joins: {}
//	measures:
//	  numberOfUsers:
//	    type: count
//	dimensions:
//	  countrycode:
//	    sql: countrycode
//	    type: string
//	    title: Country code
//
// # Loading
//
// LoadCube turns an authored RawCube into a validated Cube or fails with a
// *ValidationError naming the offending entry. Parse and ParseBytes do the
// same from YAML, decoding strictly (unknown keys are rejected) and attaching
// line numbers to every diagnostic.
//
// # Revisions
//
// MergeCube layers a newer revision of a cube over an older one. Entries are
// replaced whole, never field by field. Changes lists what a merge would do.
//
// Loaded cubes are treated as read-only values; MergeCube and Clone never
// share maps with their inputs.
package cube
