// Package conv provides checked integer conversion and arithmetic utilities.
//
// The functions perform bounds checking to prevent silent overflow when sizes
// derived from element counts and element widths are turned into byte counts.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
