package review

// Package review holds the state of an interactive modulus review: the list
// of specimen files, the strain window being fitted, the accepted results and
// the marker drag state. It has no GUI dependency.
