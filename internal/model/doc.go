package model

// Package model defines domain data structures used across the app: specimen
// curves, summary rows, modulus review results, and task status enums for the
// batch and export services. Structures are plain values so the UI can bind
// to them directly.
