package platform

// Package platform contains OS/platform integration: filesystem helpers,
// specimen file discovery, a raw data directory watcher, and OS open/reveal.
