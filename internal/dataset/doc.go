package dataset

// Package dataset reads specimen exports and writes the reduced tables:
// the flexural summary, manual modulus results, and their workbook form.
