package runner

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ytget/office-converter/internal/model"
)

var (
	// ErrAlreadyStarted is returned when Start is called on a runner that is not idle
	ErrAlreadyStarted = errors.New("runner already started")
	// ErrBusy is returned by Launcher.Launch while another batch is running
	ErrBusy = errors.New("a conversion is already running")
)

// ConversionError records which file of a batch failed and why
type ConversionError struct {
	File string
	Mode model.ConversionMode
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s (%s): %v", filepath.Base(e.File), e.Mode, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
