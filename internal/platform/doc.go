package platform

// Package platform contains OS integration: output directory helpers,
// revealing folders and files in the system file manager, and locating the
// LibreOffice executable.
