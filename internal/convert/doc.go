package convert

// Package convert maps each conversion mode to the collaborator that performs
// the actual format conversion. The shipped collaborators drive LibreOffice in
// headless mode; the core treats them as black boxes that either write their
// output or return an error.
