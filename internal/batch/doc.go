package batch

// Package batch implements the reduction pipeline for a directory of
// specimen exports: each file becomes a task that computes flexural strength
// and the initial-region modulus. Files are processed by a bounded worker
// pool, progress is pushed through an update callback, and the summary is
// written in discovery order.
