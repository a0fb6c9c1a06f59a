package tasklist

// Package tasklist holds the ordered set of files selected for conversion and
// the current conversion mode. It rejects files whose extension does not match
// the mode, rejects duplicates, and clears itself whenever the mode changes.
