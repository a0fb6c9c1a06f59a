package tasklist

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ytget/office-converter/internal/model"
)

var (
	// ErrExtensionMismatch means the file does not have the extension the current mode requires
	ErrExtensionMismatch = errors.New("file extension does not match conversion mode")

	// ErrDuplicateFile means the file is already in the list
	ErrDuplicateFile = errors.New("file already in list")

	// ErrNoOutputDir means a snapshot was requested without an output directory
	ErrNoOutputDir = errors.New("output directory is not set")
)

// ValidationError is a non-fatal rejection of a file at add time
type ValidationError struct {
	Path string
	Mode model.ConversionMode
	Err  error
}

func (e *ValidationError) Error() string {
	name := filepath.Base(e.Path)
	if errors.Is(e.Err, ErrExtensionMismatch) {
		return fmt.Sprintf("%s: only .%s files are allowed in %s mode", name, e.Mode.RequiredExtension(), e.Mode.Label())
	}
	return fmt.Sprintf("%s: %v", name, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
