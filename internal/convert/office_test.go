package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and writes the file soffice would produce
type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	err     error
	noWrite bool
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	if f.noWrite {
		return nil
	}

	var outDir, filter string
	for i := 0; i < len(args)-1; i++ {
		switch args[i] {
		case OutDirFlag:
			outDir = args[i+1]
		case ConvertToFlag:
			filter = args[i+1]
		}
	}
	input := args[len(args)-1]
	return os.WriteFile(producedPath(input, outDir, filterExtension(filter)), []byte("converted"), 0o644)
}

func (f *fakeRunner) lastCall() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

func newTestOffice(r commandRunner) *Office {
	o := NewOffice("soffice-test")
	o.runner = r
	return o
}

func writeInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("input"), 0o644))
	return path
}

func TestBuildSofficeArgs(t *testing.T) {
	args := BuildSofficeArgs("/tmp/profile", WriterPDFExport, "", "/out", "/in/a.docx")

	assert.Equal(t, []string{
		"--headless", "--norestore", "--nolockcheck",
		"-env:UserInstallation=file:///tmp/profile",
		"--convert-to", "pdf:writer_pdf_Export",
		"--outdir", "/out",
		"/in/a.docx",
	}, args)

	args = BuildSofficeArgs("/tmp/profile", WordDocxExport, PDFImportFilter, "/out", "/in/a.pdf")
	assert.Contains(t, args, "--infilter=writer_pdf_import")
	assert.Equal(t, "/in/a.pdf", args[len(args)-1])
}

func TestProfileURL(t *testing.T) {
	assert.Equal(t, "file:///tmp/profile", profileURL("/tmp/profile"))
	assert.Equal(t, "file:///tmp/with%20space", profileURL("/tmp/with space"))
}

func TestFilterExtension(t *testing.T) {
	tests := map[string]string{
		WriterPDFExport:  "pdf",
		ImpressPDFExport: "pdf",
		CalcPDFExport:    "pdf",
		WordDocxExport:   "docx",
	}
	for filter, want := range tests {
		assert.Equal(t, want, filterExtension(filter), filter)
	}
}

func TestOffice_WordToPDF(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	input := writeInput(t, in, "report.docx")

	runner := &fakeRunner{}
	o := newTestOffice(runner)

	require.NoError(t, o.WordToPDF(context.Background(), input, out))
	assert.FileExists(t, filepath.Join(out, "report.pdf"))

	call := runner.lastCall()
	require.NotEmpty(t, call)
	assert.Equal(t, "soffice-test", call[0])
	assert.Contains(t, call, WriterPDFExport)
}

func TestOffice_ExplicitOutputModes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		filter string
		conv   func(*Office) ConverterFunc
	}{
		{"pdf to word", "scan.pdf", "scan_converted.docx", WordDocxExport, func(o *Office) ConverterFunc { return o.PDFToWord }},
		{"ppt to pdf", "deck.pptx", "deck_converted.pdf", ImpressPDFExport, func(o *Office) ConverterFunc { return o.PPTToPDF }},
		{"xlsx to pdf", "q1.xlsx", "q1_converted.pdf", CalcPDFExport, func(o *Office) ConverterFunc { return o.XLSXToPDF }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := t.TempDir()
			out := t.TempDir()
			input := writeInput(t, in, tt.input)
			target := filepath.Join(out, tt.output)

			runner := &fakeRunner{}
			o := newTestOffice(runner)

			require.NoError(t, tt.conv(o)(context.Background(), input, target))
			assert.FileExists(t, target)
			assert.Contains(t, runner.lastCall(), tt.filter)

			// Only the target is left behind; the scratch directory is released
			entries, err := os.ReadDir(out)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.output, entries[0].Name())
		})
	}
}

func TestOffice_NoOutput(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	o := newTestOffice(&fakeRunner{noWrite: true})

	err := o.WordToPDF(context.Background(), writeInput(t, in, "a.docx"), out)
	assert.ErrorIs(t, err, ErrNoOutput)

	err = o.PPTToPDF(context.Background(), writeInput(t, in, "b.pptx"), filepath.Join(out, "b_converted.pdf"))
	assert.ErrorIs(t, err, ErrNoOutput)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory must be removed on failure")
}

func TestOffice_NoOutputWithStaleFile(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	stale := filepath.Join(out, "report.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	runner := &fakeRunner{noWrite: true}
	o := newTestOffice(runner)

	err := o.WordToPDF(context.Background(), writeInput(t, in, "report.docx"), out)
	assert.ErrorIs(t, err, ErrNoOutput)

	// soffice wrote into a scratch directory, never into out itself
	call := runner.lastCall()
	require.NotEmpty(t, call)
	for i, arg := range call {
		if arg == OutDirFlag {
			assert.NotEqual(t, out, call[i+1])
		}
	}

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestOffice_WordToPDFReplacesStaleFile(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	stale := filepath.Join(out, "report.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	o := newTestOffice(&fakeRunner{})
	require.NoError(t, o.WordToPDF(context.Background(), writeInput(t, in, "report.docx"), out))

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, "converted", string(data))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOffice_RunnerError(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	boom := errors.New("soffice failed: exit status 1: source file could not be loaded")
	o := newTestOffice(&fakeRunner{err: boom})

	err := o.XLSXToPDF(context.Background(), writeInput(t, in, "q1.xlsx"), filepath.Join(out, "q1_converted.pdf"))
	assert.ErrorIs(t, err, boom)
}

func TestOffice_MissingInput(t *testing.T) {
	runner := &fakeRunner{}
	o := newTestOffice(runner)

	err := o.WordToPDF(context.Background(), filepath.Join(t.TempDir(), "missing.docx"), t.TempDir())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "does not exist"))
	assert.Nil(t, runner.lastCall(), "soffice must not be started for a missing input")
}

func TestOffice_SetBinaryAndTimeout(t *testing.T) {
	o := NewOffice("")
	assert.Equal(t, OfficeCommand, o.Binary())

	o.SetBinary("/opt/libreoffice/program/soffice")
	assert.Equal(t, "/opt/libreoffice/program/soffice", o.Binary())

	o.SetBinary("")
	assert.Equal(t, OfficeCommand, o.Binary())

	o.SetTimeout(-1)
	assert.Equal(t, DefaultTimeout, o.timeout)
}
