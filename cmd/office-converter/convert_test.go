package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/office-converter/internal/convert"
	"github.com/ytget/office-converter/internal/model"
	"github.com/ytget/office-converter/internal/runner"
)

// stubResolver makes every mode convert through fn
func stubResolver(t *testing.T, fn convert.ConverterFunc) {
	t.Helper()
	orig := newResolver
	newResolver = func(string, time.Duration) (runner.Resolver, error) {
		reg := convert.NewRegistry()
		for _, mode := range model.Modes() {
			reg.Register(mode, fn)
		}
		return reg, nil
	}
	t.Cleanup(func() { newResolver = orig })
}

func TestRunConvert_Success(t *testing.T) {
	var converted []string
	stubResolver(t, func(ctx context.Context, in, out string) error {
		converted = append(converted, filepath.Base(in)+"->"+out)
		return nil
	})

	outDir := filepath.Join(t.TempDir(), "out")
	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), convertOptions{
		Mode:   "word-to-pdf",
		OutDir: outDir,
		Files:  []string{"/in/a.docx", "/in/skip.pdf", "/in/b.docx"},
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "[  0%] Starting a.docx\n"+
		"[ 50%] Converted: a.docx\n"+
		"[ 50%] Starting b.docx\n"+
		"[100%] Converted: b.docx\n"+
		"Converted 2 file(s) to "+outDir+"\n", stdout.String())
	assert.Contains(t, stderr.String(), "warning: skip.pdf")
	assert.Equal(t, []string{"a.docx->" + outDir, "b.docx->" + outDir}, converted)
	assert.DirExists(t, outDir)
}

func TestRunConvert_Failure(t *testing.T) {
	stubResolver(t, func(ctx context.Context, in, out string) error {
		return errors.New("damaged file")
	})

	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), convertOptions{
		Mode:   "pdf-to-word",
		OutDir: t.TempDir(),
		Files:  []string{"/in/x.pdf", "/in/y.pdf"},
	}, &stdout, &stderr)

	var convErr *runner.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "/in/x.pdf", convErr.File)
	assert.Equal(t, "[  0%] Starting x.pdf\n", stdout.String())
}

func TestRunConvert_Manifest(t *testing.T) {
	var inputs []string
	stubResolver(t, func(ctx context.Context, in, out string) error {
		inputs = append(inputs, in)
		return nil
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: xlsx-to-pdf\noutput_dir: out\nfiles:\n  - q1.xlsx\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), convertOptions{
		Manifest: path,
		Files:    []string{filepath.Join(dir, "q2.xlsx")},
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "q1.xlsx"), filepath.Join(dir, "q2.xlsx")}, inputs)
	assert.DirExists(t, filepath.Join(dir, "out"))
}

func TestRunConvert_RelativeArgumentMatchesManifest(t *testing.T) {
	var inputs []string
	stubResolver(t, func(ctx context.Context, in, out string) error {
		inputs = append(inputs, in)
		return nil
	})

	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("batch.yaml", []byte("mode: word-to-pdf\noutput_dir: out\nfiles:\n  - a.docx\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), convertOptions{
		Manifest: "batch.yaml",
		Files:    []string{"a.docx", "./b.docx"},
	}, &stdout, &stderr)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(wd, "a.docx"), filepath.Join(wd, "b.docx")}, inputs)
	assert.Contains(t, stderr.String(), "warning:")
}

func TestResolveBatch_AbsoluteArguments(t *testing.T) {
	chdir(t, t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)

	_, _, files, err := resolveBatch(convertOptions{Mode: "word-to-pdf", Files: []string{"docs/../a.docx", "/in/b.docx"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(wd, "a.docx"), "/in/b.docx"}, files)
}

func TestRunConvert_Errors(t *testing.T) {
	stubResolver(t, func(context.Context, string, string) error { return nil })

	tests := []struct {
		name string
		opts convertOptions
		want string
	}{
		{"missing mode", convertOptions{OutDir: "/out", Files: []string{"a.docx"}}, "mode is required"},
		{"unknown mode", convertOptions{Mode: "video-to-gif", OutDir: "/out"}, "unknown conversion mode"},
		{"missing output", convertOptions{Mode: "word-to-pdf", Files: []string{"a.docx"}}, "output directory is required"},
		{"no valid files", convertOptions{Mode: "word-to-pdf", OutDir: "/out", Files: []string{"a.pdf"}}, "no valid .docx files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := runConvert(context.Background(), tt.opts, &stdout, &stderr)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "got %q", err)
		})
	}
}

func TestRunConvert_EmptyBatchIsSentinel(t *testing.T) {
	stubResolver(t, func(context.Context, string, string) error { return nil })

	err := runConvert(context.Background(), convertOptions{Mode: "word-to-pdf", OutDir: t.TempDir()}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, model.ErrEmptyBatch)
}

func TestPrintModes(t *testing.T) {
	registry := convert.NewOfficeRegistry(convert.NewOffice(""))

	var buf bytes.Buffer
	require.NoError(t, printModes(&buf, registry.Modes()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(model.Modes())+1)
	assert.True(t, strings.HasPrefix(lines[0], "MODE"))
	assert.Contains(t, buf.String(), "word-to-pdf")
	assert.Contains(t, buf.String(), ".pptx")
}

func TestPrintModes_OnlyRegistered(t *testing.T) {
	registry := convert.NewRegistry()
	registry.Register(model.ModeXLSXToPDF, convert.ConverterFunc(func(context.Context, string, string) error { return nil }))

	var buf bytes.Buffer
	require.NoError(t, printModes(&buf, registry.Modes()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "xlsx-to-pdf"))
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup, like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(orig)) })
}
