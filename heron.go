// Package heron loads and validates semantic-layer cube schemas.
//
// A cube wraps one SQL-derived row set and annotates it with measures
// (aggregations) and dimensions (typed, groupable columns). The schema
// packages live under internal/; this package only carries build metadata.
package heron

// Version is the heron release version, overridden at build time via -ldflags.
var Version = "0.1.0-dev"
