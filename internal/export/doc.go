package export

// Package export runs exports of results, summaries and charts as
// background tasks with status updates.
