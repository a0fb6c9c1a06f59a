package convert

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ytget/office-converter/internal/model"
)

// LibreOffice constants for headless conversion
const (
	// Executable
	OfficeCommand = "soffice"

	// Process flags
	HeadlessFlag    = "--headless"
	NoRestoreFlag   = "--norestore"
	NoLockCheckFlag = "--nolockcheck"
	ConvertToFlag   = "--convert-to"
	OutDirFlag      = "--outdir"
	InFilterPrefix  = "--infilter="
	ProfileEnvFlag  = "-env:UserInstallation="

	// Export filters
	WriterPDFExport  = "pdf:writer_pdf_Export"
	ImpressPDFExport = "pdf:impress_pdf_Export"
	CalcPDFExport    = "pdf:calc_pdf_Export"
	WordDocxExport   = "docx:MS Word 2007 XML"

	// Import filters
	PDFImportFilter = "writer_pdf_import"

	// Scratch directories
	ProfileDirPattern = "officeconv-profile-*"
	ScratchDirPattern = ".officeconv-*"

	// DefaultTimeout bounds a single file conversion
	DefaultTimeout = 5 * time.Minute
)

var (
	// ErrNoOutput means LibreOffice exited without writing the expected file.
	// soffice exits 0 in many failure cases, so the output is always checked.
	ErrNoOutput = errors.New("converter produced no output")
)

// Office runs conversions through a headless LibreOffice process
type Office struct {
	mu      sync.RWMutex
	binary  string
	timeout time.Duration
	runner  commandRunner
}

// NewOffice creates a LibreOffice driver. An empty binary uses "soffice" from PATH.
func NewOffice(binary string) *Office {
	if binary == "" {
		binary = OfficeCommand
	}
	return &Office{
		binary:  binary,
		timeout: DefaultTimeout,
		runner:  osCommandRunner{},
	}
}

// Binary returns the LibreOffice executable in use
func (o *Office) Binary() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.binary
}

// SetBinary changes the LibreOffice executable used by later conversions
func (o *Office) SetBinary(binary string) {
	if binary == "" {
		binary = OfficeCommand
	}
	o.mu.Lock()
	o.binary = binary
	o.mu.Unlock()
}

// SetTimeout changes the per-file timeout; non-positive values restore the default
func (o *Office) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	o.mu.Lock()
	o.timeout = timeout
	o.mu.Unlock()
}

// NewOfficeRegistry binds every conversion mode to its LibreOffice collaborator
func NewOfficeRegistry(o *Office) *Registry {
	r := NewRegistry()
	r.Register(model.ModeWordToPDF, ConverterFunc(o.WordToPDF))
	r.Register(model.ModePDFToWord, ConverterFunc(o.PDFToWord))
	r.Register(model.ModePPTToPDF, ConverterFunc(o.PPTToPDF))
	r.Register(model.ModeXLSXToPDF, ConverterFunc(o.XLSXToPDF))
	return r
}

// WordToPDF converts a .docx into outputDir. LibreOffice names the result
// <base>.pdf; a file of that name already in outputDir is replaced only by a
// fresh conversion.
func (o *Office) WordToPDF(ctx context.Context, inputPath, outputDir string) error {
	target := producedPath(inputPath, outputDir, filterExtension(WriterPDFExport))
	return o.convertToFile(ctx, inputPath, target, WriterPDFExport, "")
}

// PDFToWord converts a .pdf into the explicit .docx path outputPath
func (o *Office) PDFToWord(ctx context.Context, inputPath, outputPath string) error {
	return o.convertToFile(ctx, inputPath, outputPath, WordDocxExport, PDFImportFilter)
}

// PPTToPDF renders a .pptx into the explicit .pdf path outputPath
func (o *Office) PPTToPDF(ctx context.Context, inputPath, outputPath string) error {
	return o.convertToFile(ctx, inputPath, outputPath, ImpressPDFExport, "")
}

// XLSXToPDF renders a .xlsx into the explicit .pdf path outputPath
func (o *Office) XLSXToPDF(ctx context.Context, inputPath, outputPath string) error {
	return o.convertToFile(ctx, inputPath, outputPath, CalcPDFExport, "")
}

// convertToFile converts into a scratch directory next to outputPath and moves
// the result into place. The scratch directory is always released.
func (o *Office) convertToFile(ctx context.Context, inputPath, outputPath, filter, inFilter string) error {
	outDir := filepath.Dir(outputPath)
	scratch, err := os.MkdirTemp(outDir, ScratchDirPattern)
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	if err := o.run(ctx, inputPath, scratch, filter, inFilter); err != nil {
		return err
	}

	produced := producedPath(inputPath, scratch, filterExtension(filter))
	if err := expectOutput(produced); err != nil {
		return err
	}

	if err := os.Rename(produced, outputPath); err != nil {
		return fmt.Errorf("failed to move output to %s: %w", outputPath, err)
	}
	return nil
}

// run invokes soffice once with an isolated user profile
func (o *Office) run(ctx context.Context, inputPath, outDir, filter, inFilter string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file does not exist: %s", inputPath)
	}

	o.mu.RLock()
	binary, timeout, runner := o.binary, o.timeout, o.runner
	o.mu.RUnlock()

	profile, err := os.MkdirTemp("", ProfileDirPattern)
	if err != nil {
		return fmt.Errorf("failed to create LibreOffice profile directory: %w", err)
	}
	defer os.RemoveAll(profile)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := BuildSofficeArgs(profile, filter, inFilter, outDir, inputPath)
	log.Printf("Running %s for %s (filter %s)", binary, filepath.Base(inputPath), filter)

	if err := runner.Run(ctx, binary, args...); err != nil {
		return err
	}
	return nil
}

// BuildSofficeArgs builds the LibreOffice command line arguments
func BuildSofficeArgs(profileDir, filter, inFilter, outDir, inputPath string) []string {
	args := []string{
		HeadlessFlag,    // No UI
		NoRestoreFlag,   // Skip crash recovery
		NoLockCheckFlag, // Ignore document locks
		ProfileEnvFlag + profileURL(profileDir), // Isolated user profile
	}
	if inFilter != "" {
		args = append(args, InFilterPrefix+inFilter)
	}
	return append(args,
		ConvertToFlag, filter, // Target format and export filter
		OutDirFlag, outDir, // Output directory
		inputPath, // Input file
	)
}

// profileURL turns a directory into the file URL LibreOffice expects
func profileURL(dir string) string {
	p := filepath.ToSlash(dir)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// filterExtension returns the file extension a --convert-to filter produces
func filterExtension(filter string) string {
	ext, _, _ := strings.Cut(filter, ":")
	return ext
}

// producedPath is where LibreOffice writes the converted inputPath inside dir
func producedPath(inputPath, dir, ext string) string {
	name := filepath.Base(inputPath)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, base+"."+ext)
}

// expectOutput checks that the converter wrote a non-empty file at path
func expectOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrNoOutput, filepath.Base(path))
	}
	return nil
}
