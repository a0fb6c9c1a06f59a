package tasklist

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/office-converter/internal/model"
)

// BatchIDPrefix prefixes generated batch identifiers
const BatchIDPrefix = "batch-"

// Manager holds the selected files and the current conversion mode
type Manager struct {
	mu       sync.RWMutex
	mode     model.ConversionMode
	files    []model.FileEntry
	onChange func() // callback for UI updates
}

// NewManager creates an empty task list in the given mode
func NewManager(mode model.ConversionMode) *Manager {
	if !mode.IsValid() {
		mode = model.DefaultMode()
	}
	return &Manager{
		mode:  mode,
		files: make([]model.FileEntry, 0),
	}
}

// RequiredExtension returns the input extension a mode accepts
func RequiredExtension(mode model.ConversionMode) string {
	return mode.RequiredExtension()
}

// SetChangeCallback sets the function called after every mutation of the list
func (m *Manager) SetChangeCallback(callback func()) {
	m.mu.Lock()
	m.onChange = callback
	m.mu.Unlock()
}

// Mode returns the current conversion mode
func (m *Manager) Mode() model.ConversionMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// SetMode switches the conversion mode. Files selected for the previous mode
// are no longer valid, so the list is cleared whenever the mode changes.
// It reports whether the mode changed.
func (m *Manager) SetMode(mode model.ConversionMode) (bool, error) {
	if !mode.IsValid() {
		return false, fmt.Errorf("unknown conversion mode: %s", mode)
	}

	m.mu.Lock()
	if m.mode == mode {
		m.mu.Unlock()
		return false, nil
	}
	m.mode = mode
	m.files = m.files[:0]
	m.mu.Unlock()

	log.Printf("Conversion mode changed to %s, file list cleared", mode)
	m.notifyChange()
	return true, nil
}

// AddFile appends path to the list. A path with the wrong extension or one
// already present is rejected with a *ValidationError and the list is left
// unchanged.
func (m *Manager) AddFile(path string) error {
	entry := model.NewFileEntry(path)

	m.mu.Lock()
	mode := m.mode
	if !mode.Accepts(entry.Path) {
		m.mu.Unlock()
		return &ValidationError{Path: entry.Path, Mode: mode, Err: ErrExtensionMismatch}
	}
	for _, existing := range m.files {
		if existing.Path == entry.Path {
			m.mu.Unlock()
			return &ValidationError{Path: entry.Path, Mode: mode, Err: ErrDuplicateFile}
		}
	}
	m.files = append(m.files, entry)
	m.mu.Unlock()

	m.notifyChange()
	return nil
}

// AddFiles adds each path in order and returns how many were added along with
// the validation errors for the rejected ones.
func (m *Manager) AddFiles(paths []string) (int, []error) {
	added := 0
	var errs []error
	for _, path := range paths {
		if err := m.AddFile(path); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, errs
}

// RemoveFile removes the entry matching path. It reports whether an entry was removed.
func (m *Manager) RemoveFile(path string) bool {
	target := model.NewFileEntry(path).Path

	m.mu.Lock()
	removed := false
	for i, entry := range m.files {
		if entry.Path == target {
			m.files = append(m.files[:i], m.files[i+1:]...)
			removed = true
			break
		}
	}
	m.mu.Unlock()

	if removed {
		m.notifyChange()
	}
	return removed
}

// Clear empties the list
func (m *Manager) Clear() {
	m.mu.Lock()
	m.files = m.files[:0]
	m.mu.Unlock()

	m.notifyChange()
}

// Files returns a copy of the selected files in insertion order
func (m *Manager) Files() []model.FileEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]model.FileEntry, len(m.files))
	copy(files, m.files)
	return files
}

// Len returns the number of selected files
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files)
}

// Contains reports whether path is in the list
func (m *Manager) Contains(path string) bool {
	target := model.NewFileEntry(path).Path

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, entry := range m.files {
		if entry.Path == target {
			return true
		}
	}
	return false
}

// Snapshot freezes the current list, mode, and outputDir into a Batch for the runner
func (m *Manager) Snapshot(outputDir string) (model.Batch, error) {
	if strings.TrimSpace(outputDir) == "" {
		return model.Batch{}, ErrNoOutputDir
	}

	m.mu.RLock()
	mode := m.mode
	files := make([]model.FileEntry, len(m.files))
	copy(files, m.files)
	m.mu.RUnlock()

	return model.NewBatch(generateBatchID(), mode, outputDir, files)
}

// notifyChange calls the change callback if set
func (m *Manager) notifyChange() {
	m.mu.RLock()
	callback := m.onChange
	m.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// generateBatchID generates a unique, time-ordered batch ID using UUID v7
func generateBatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(BatchIDPrefix+"%d", time.Now().UnixNano())
	}
	return BatchIDPrefix + id.String()
}
