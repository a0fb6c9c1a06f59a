package ui

// Package ui contains the Fyne-based desktop user interface. It lets the user
// pick a conversion mode, collect input files, choose an output folder and
// follow the batch as it runs. All UI strings are localized via Localization.
