package ui

import (
	"testing"

	"github.com/ytget/office-converter/internal/model"
)

func TestBatchProgress_Success(t *testing.T) {
	p := newBatchProgress(2)
	if p.status(0) != FileStatusQueued || p.status(1) != FileStatusQueued {
		t.Fatalf("expected all queued, got %v %v", p.status(0), p.status(1))
	}

	p.apply(model.ProgressEvent{Percent: 0, Label: "Starting a.docx"})
	if got := p.status(0); got != FileStatusConverting {
		t.Errorf("status(0) = %v, want converting", got)
	}

	p.apply(model.ProgressEvent{Percent: 50, Label: "Converted: a.docx"})
	p.apply(model.ProgressEvent{Percent: 50, Label: "Starting b.docx"})
	p.apply(model.ProgressEvent{Percent: 100, Label: "Converted: b.docx"})

	if p.status(0) != FileStatusConverted || p.status(1) != FileStatusConverted {
		t.Errorf("expected all converted, got %v %v", p.status(0), p.status(1))
	}
	if p.percent != 100 || p.label != "Converted: b.docx" {
		t.Errorf("last event = (%d, %q)", p.percent, p.label)
	}
}

func TestBatchProgress_Failure(t *testing.T) {
	p := newBatchProgress(3)
	p.apply(model.ProgressEvent{Percent: 0, Label: "Starting a.pdf"})
	p.apply(model.ProgressEvent{Percent: 33, Label: "Converted: a.pdf"})
	p.apply(model.ProgressEvent{Percent: 33, Label: "Starting b.pdf"})
	p.fail()

	want := []FileStatus{FileStatusConverted, FileStatusFailed, FileStatusQueued}
	for i, w := range want {
		if got := p.status(i); got != w {
			t.Errorf("status(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestBatchProgress_FailBeforeStart(t *testing.T) {
	p := newBatchProgress(1)
	p.fail()
	if got := p.status(0); got != FileStatusQueued {
		t.Errorf("status(0) = %v, want queued", got)
	}
}

func TestBatchProgress_ExtraStartingIgnored(t *testing.T) {
	p := newBatchProgress(1)
	p.apply(model.ProgressEvent{Label: "Starting a.docx"})
	p.apply(model.ProgressEvent{Label: "Starting b.docx"})
	if p.current != 0 {
		t.Errorf("current = %d, want 0", p.current)
	}
}

func TestBatchProgress_StatusOutOfRange(t *testing.T) {
	var nilProgress *batchProgress
	if got := nilProgress.status(0); got != FileStatusNone {
		t.Errorf("nil progress status = %v", got)
	}

	p := newBatchProgress(1)
	if p.status(-1) != FileStatusNone || p.status(1) != FileStatusNone {
		t.Error("out of range index should report none")
	}
}
