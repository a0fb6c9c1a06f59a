package model

import (
	"errors"
	"path/filepath"
	"time"
)

// ErrEmptyBatch is returned when a batch would contain no files
var ErrEmptyBatch = errors.New("batch contains no files")

// FileEntry is a user-selected input file
type FileEntry struct {
	Path string // cleaned file system path
	Name string // display name (base name)
}

// NewFileEntry creates a file entry with a cleaned path and derived display name
func NewFileEntry(path string) FileEntry {
	clean := filepath.Clean(path)
	return FileEntry{
		Path: clean,
		Name: filepath.Base(clean),
	}
}

// Batch is an immutable snapshot of one conversion run: files, mode, and
// output directory. It is created when the user triggers conversion and
// discarded after the run finishes.
type Batch struct {
	id        string
	mode      ConversionMode
	outputDir string
	files     []FileEntry
	createdAt time.Time
}

// NewBatch creates a batch from a copy of files. The file list must not be empty.
func NewBatch(id string, mode ConversionMode, outputDir string, files []FileEntry) (Batch, error) {
	if len(files) == 0 {
		return Batch{}, ErrEmptyBatch
	}

	snapshot := make([]FileEntry, len(files))
	copy(snapshot, files)

	return Batch{
		id:        id,
		mode:      mode,
		outputDir: outputDir,
		files:     snapshot,
		createdAt: time.Now(),
	}, nil
}

// ID returns the batch identifier
func (b Batch) ID() string { return b.id }

// Mode returns the conversion mode
func (b Batch) Mode() ConversionMode { return b.mode }

// OutputDir returns the output directory
func (b Batch) OutputDir() string { return b.outputDir }

// CreatedAt returns when the snapshot was taken
func (b Batch) CreatedAt() time.Time { return b.createdAt }

// Len returns the number of files in the batch
func (b Batch) Len() int { return len(b.files) }

// Files returns a copy of the batch files in insertion order
func (b Batch) Files() []FileEntry {
	files := make([]FileEntry, len(b.files))
	copy(files, b.files)
	return files
}

// ProgressEvent is emitted before and after each file's conversion
type ProgressEvent struct {
	Percent int    // 0 to 100
	Label   string // e.g. "Starting report.docx"
}

// Outcome is the terminal result of a run
type Outcome struct {
	State   RunState // RunStateCompleted or RunStateFailed
	Message string   // failure message, empty on success
	Err     error    // underlying failure, nil on success
}

// Completed returns a successful outcome
func Completed() Outcome {
	return Outcome{State: RunStateCompleted}
}

// Failed returns a failed outcome. An empty message falls back to err's text.
func Failed(message string, err error) Outcome {
	if message == "" && err != nil {
		message = err.Error()
	}
	return Outcome{State: RunStateFailed, Message: message, Err: err}
}

// Succeeded reports whether every file was converted
func (o Outcome) Succeeded() bool {
	return o.State == RunStateCompleted
}
