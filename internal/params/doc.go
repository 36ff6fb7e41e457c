// Package params parses command-line options into a read-only store.
//
// # Grammar
//
// An option is any token of the form -name, -name=value, --name or
// --name=value. A leading "--" is rewritten to "-" before anything else, so
// --testnet and -testnet are the same option. Names are case-sensitive and
// keep their leading dash: lookups use "-testnet", not "testnet".
//
// Everything else (URIs, a lone "-", file names) is not an option. Such
// tokens are skipped for lookups and kept, in order, in Store.Positional.
//
// # Repetition
//
// An option may appear many times. GetString, GetInt and GetBool read the
// first occurrence; GetStringList returns every value in argument order.
//
// # Booleans and negation
//
// Every boolean option -X has a negated form -noX. An explicit -X always
// wins over -noX no matter where either appears:
//
//	-X -noX      true
//	-noX -X      true
//	-X=0 -noX=0  false
//	-noX         false
//	-noX=0       true
//
// A bare -X (and -X=) counts as true for GetBool but reads as "" through
// GetString.
//
// # Integers
//
// GetInt returns its default only when the option is absent. A present
// option whose first value does not parse as a base-10 integer reads as 0.
//
// # Config files
//
// Merge layers values from a config file underneath the command line: a name
// already given on the command line keeps its command-line values.
//
// The store is built once at startup, before any goroutine reads it, and is
// never modified afterwards. Lookups take no locks.
package params
