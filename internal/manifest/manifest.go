// Package manifest loads batch descriptions from YAML files.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/ytget/office-converter/internal/model"
)

// ErrNoFiles is returned when a manifest lists no input files
var ErrNoFiles = errors.New("manifest lists no files")

// Manifest describes one batch: the mode, where outputs go, and the inputs
type Manifest struct {
	Mode      model.ConversionMode
	OutputDir string
	Files     []string
}

// document is the on-disk shape
type document struct {
	Mode      string   `yaml:"mode"`
	OutputDir string   `yaml:"output_dir"`
	Files     []string `yaml:"files"`
}

// Load reads a manifest file. Relative output and input paths are resolved
// against the manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolve manifest directory: %w", err)
	}
	m.resolve(base)
	return m, nil
}

// Parse decodes manifest YAML without touching the filesystem
func Parse(data []byte) (*Manifest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	mode, err := model.ParseMode(doc.Mode)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(doc.Files))
	for _, f := range doc.Files {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	return &Manifest{
		Mode:      mode,
		OutputDir: strings.TrimSpace(doc.OutputDir),
		Files:     files,
	}, nil
}

// resolve makes relative paths absolute against base
func (m *Manifest) resolve(base string) {
	if m.OutputDir != "" && !filepath.IsAbs(m.OutputDir) {
		m.OutputDir = filepath.Join(base, m.OutputDir)
	}
	for i, f := range m.Files {
		if !filepath.IsAbs(f) {
			m.Files[i] = filepath.Join(base, f)
		}
	}
}
