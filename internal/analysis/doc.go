package analysis

// Package analysis implements the flexural calculations: strength as the
// peak stress, and modulus as the least-squares slope of stress against
// decimal strain over either the initial region or a chosen strain window.
