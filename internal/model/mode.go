package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ConversionMode selects the input format a batch accepts and the conversion
// applied to each file.
type ConversionMode string

const (
	ModeWordToPDF ConversionMode = "word-to-pdf"
	ModePDFToWord ConversionMode = "pdf-to-word"
	ModePPTToPDF  ConversionMode = "ppt-to-pdf"
	ModeXLSXToPDF ConversionMode = "xlsx-to-pdf"
)

// ConvertedSuffix is appended to the base name of explicit output files
const ConvertedSuffix = "_converted"

// modeSpec is one row of the mode dispatch table
type modeSpec struct {
	label     string
	inputExt  string
	targetExt string
	// outputIsDir means the collaborator receives the output directory and
	// picks the final filename itself.
	outputIsDir bool
}

var modeTable = map[ConversionMode]modeSpec{
	ModeWordToPDF: {label: "Word → PDF", inputExt: "docx", targetExt: "pdf", outputIsDir: true},
	ModePDFToWord: {label: "PDF → Word", inputExt: "pdf", targetExt: "docx"},
	ModePPTToPDF:  {label: "PowerPoint → PDF", inputExt: "pptx", targetExt: "pdf"},
	ModeXLSXToPDF: {label: "Excel → PDF", inputExt: "xlsx", targetExt: "pdf"},
}

// modeOrder is the order modes are offered to the user
var modeOrder = []ConversionMode{ModeWordToPDF, ModePDFToWord, ModePPTToPDF, ModeXLSXToPDF}

// Modes returns all conversion modes in display order
func Modes() []ConversionMode {
	modes := make([]ConversionMode, len(modeOrder))
	copy(modes, modeOrder)
	return modes
}

// DefaultMode is the mode selected on startup
func DefaultMode() ConversionMode {
	return ModeWordToPDF
}

// ParseMode resolves a mode from its identifier or its display label
func ParseMode(s string) (ConversionMode, error) {
	key := strings.TrimSpace(s)
	for _, mode := range modeOrder {
		if strings.EqualFold(key, string(mode)) || key == modeTable[mode].label {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown conversion mode: %q", s)
}

// String returns the stable identifier of the mode
func (m ConversionMode) String() string {
	return string(m)
}

// IsValid reports whether the mode is one of the known modes
func (m ConversionMode) IsValid() bool {
	_, ok := modeTable[m]
	return ok
}

// Label returns the human readable name, e.g. "Word → PDF"
func (m ConversionMode) Label() string {
	if spec, ok := modeTable[m]; ok {
		return spec.label
	}
	return string(m)
}

// RequiredExtension returns the input extension (lowercase, without dot)
// every file of a batch in this mode must have.
func (m ConversionMode) RequiredExtension() string {
	return modeTable[m].inputExt
}

// TargetExtension returns the extension of the produced files
func (m ConversionMode) TargetExtension() string {
	return modeTable[m].targetExt
}

// OutputIsDirectory reports whether the collaborator for this mode receives
// the output directory instead of an explicit output file.
func (m ConversionMode) OutputIsDirectory() bool {
	return modeTable[m].outputIsDir
}

// OutputLocation returns what the collaborator should receive as its output
// argument for inputPath: the directory itself for directory modes, otherwise
// <outputDir>/<base>_converted.<targetExt>.
func (m ConversionMode) OutputLocation(inputPath, outputDir string) string {
	if m.OutputIsDirectory() {
		return outputDir
	}
	name := filepath.Base(inputPath)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(outputDir, base+ConvertedSuffix+"."+m.TargetExtension())
}

// Accepts reports whether path carries the extension this mode requires.
// The comparison ignores case.
func (m ConversionMode) Accepts(path string) bool {
	required := m.RequiredExtension()
	return required != "" && FileExtension(path) == required
}

// FileExtension returns the lowercase extension of path without the dot
func FileExtension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
