package ui

// Package ui contains the Fyne-based desktop interface of the modulus
// analyzer. It shows the stress-strain chart of the current specimen with two
// draggable window markers, lets the user accept fits file by file and runs
// exports and batch processing in the background. All UI strings are
// localized via Localization.
