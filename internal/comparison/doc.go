// Package comparison reconciles a computed floor-area program against a reference
// area table, typically a competing design proposal. Reference lookups go through an
// explicit name mapping that can fold several reference lines into one computed space.
// A missing reference resolves to 0 and is not distinguished from a documented zero.
package comparison
