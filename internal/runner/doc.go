// Package runner executes a conversion batch sequentially on a background
// goroutine and reports progress and the terminal outcome through callbacks.
//
// A Runner is single use. Launcher keeps at most one Runner active at a time
// for the desktop application.
package runner
