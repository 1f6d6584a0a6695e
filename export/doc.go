// Package export turns a built field into something a person or another tool
// can read: a per-cell CSV dump, summary statistics over reachable costs, and
// an ASCII arrow map of one Z slice.
//
// Export only reads the field through its public lookups and never mutates it.
package export
