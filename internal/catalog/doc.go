// Package catalog is the immutable table of visualization concepts, grouped
// into the electrostatics and magnetostatics units.
package catalog
