package ui

import (
	"strings"

	"github.com/ytget/office-converter/internal/model"
	"github.com/ytget/office-converter/internal/runner"
)

// FileStatus is the per-row state shown while and after a batch runs
type FileStatus int

const (
	FileStatusNone FileStatus = iota
	FileStatusQueued
	FileStatusConverting
	FileStatusConverted
	FileStatusFailed
)

// batchProgress folds the runner's ordered event stream into per-file
// statuses. Events arrive strictly in order, so "Starting" always refers to
// the next file and "Converted" to the current one.
type batchProgress struct {
	statuses []FileStatus
	current  int
	percent  int
	label    string
}

func newBatchProgress(n int) *batchProgress {
	p := &batchProgress{
		statuses: make([]FileStatus, n),
		current:  -1,
	}
	for i := range p.statuses {
		p.statuses[i] = FileStatusQueued
	}
	return p
}

// apply records one progress event
func (p *batchProgress) apply(event model.ProgressEvent) {
	p.percent = event.Percent
	p.label = event.Label

	switch {
	case strings.HasPrefix(event.Label, runner.LabelStarting):
		if p.current+1 < len(p.statuses) {
			p.current++
			p.statuses[p.current] = FileStatusConverting
		}
	case strings.HasPrefix(event.Label, runner.LabelConverted):
		if p.valid() {
			p.statuses[p.current] = FileStatusConverted
		}
	}
}

// fail marks the file being converted as failed
func (p *batchProgress) fail() {
	if p.valid() {
		p.statuses[p.current] = FileStatusFailed
	}
}

// status returns the state of file i
func (p *batchProgress) status(i int) FileStatus {
	if p == nil || i < 0 || i >= len(p.statuses) {
		return FileStatusNone
	}
	return p.statuses[i]
}

func (p *batchProgress) valid() bool {
	return p.current >= 0 && p.current < len(p.statuses)
}
