package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/office-converter/internal/convert"
	"github.com/ytget/office-converter/internal/manifest"
	"github.com/ytget/office-converter/internal/model"
	"github.com/ytget/office-converter/internal/platform"
	"github.com/ytget/office-converter/internal/runner"
	"github.com/ytget/office-converter/internal/tasklist"
)

// Config keys, also readable as OFFICE_CONVERTER_<KEY>
const (
	keySoffice = "soffice"
	keyPacing  = "pacing"
	keyTimeout = "timeout"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert a batch of documents",
	Long: `Convert runs one batch. The mode and output directory come from flags or
from a YAML manifest (--manifest); files given as arguments are appended to
the manifest's list.

Files with the wrong extension are reported and skipped. The batch stops at
the first file that fails to convert.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := convertOptions{
			Files:   args,
			Soffice: viper.GetString(keySoffice),
			Pacing:  viper.GetDuration(keyPacing),
			Timeout: viper.GetDuration(keyTimeout),
		}
		opts.Mode, _ = cmd.Flags().GetString("mode")
		opts.OutDir, _ = cmd.Flags().GetString("out")
		opts.Manifest, _ = cmd.Flags().GetString("manifest")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return runConvert(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	convertCmd.Flags().String("mode", "", "conversion mode id or label (see the modes command)")
	convertCmd.Flags().String("out", "", "output directory")
	convertCmd.Flags().String("manifest", "", "YAML batch manifest")
	convertCmd.Flags().String(keySoffice, "", "LibreOffice executable (default: auto-detect)")
	convertCmd.Flags().Duration(keyPacing, 0, "pause before each file")
	convertCmd.Flags().Duration(keyTimeout, convert.DefaultTimeout, "timeout per file")

	for _, key := range []string{keySoffice, keyPacing, keyTimeout} {
		_ = viper.BindPFlag(key, convertCmd.Flags().Lookup(key))
	}

	rootCmd.AddCommand(convertCmd)
}

// convertOptions is everything one convert invocation needs
type convertOptions struct {
	Mode     string
	OutDir   string
	Manifest string
	Files    []string
	Soffice  string
	Pacing   time.Duration
	Timeout  time.Duration
}

// newResolver builds the converter dispatch table; tests replace it
var newResolver = func(soffice string, timeout time.Duration) (runner.Resolver, error) {
	binary, err := platform.FindOfficeBinary(soffice)
	if err != nil {
		return nil, err
	}
	office := convert.NewOffice(binary)
	office.SetTimeout(timeout)
	return convert.NewOfficeRegistry(office), nil
}

// runConvert validates the inputs through the task list and runs the batch,
// printing one line per progress event to stdout
func runConvert(ctx context.Context, opts convertOptions, stdout, stderr io.Writer) error {
	mode, outDir, files, err := resolveBatch(opts)
	if err != nil {
		return err
	}

	tasks := tasklist.NewManager(mode)
	_, errs := tasks.AddFiles(files)
	for _, err := range errs {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	if outDir == "" {
		return errors.New("output directory is required (--out or output_dir in the manifest)")
	}
	if tasks.Len() == 0 {
		return fmt.Errorf("no valid .%s files to convert: %w", mode.RequiredExtension(), model.ErrEmptyBatch)
	}
	if err := platform.EnsureWritableDir(outDir); err != nil {
		return err
	}

	batch, err := tasks.Snapshot(outDir)
	if err != nil {
		return err
	}

	resolver, err := newResolver(opts.Soffice, opts.Timeout)
	if err != nil {
		return err
	}

	r := runner.New(batch, resolver,
		runner.WithPacing(opts.Pacing),
		runner.WithCallbacks(runner.Callbacks{
			OnProgress: func(e model.ProgressEvent) {
				fmt.Fprintf(stdout, "[%3d%%] %s\n", e.Percent, e.Label)
			},
		}),
	)

	outcome, err := r.Run(ctx)
	if err != nil {
		return err
	}
	if !outcome.Succeeded() {
		return outcome.Err
	}

	fmt.Fprintf(stdout, "Converted %d file(s) to %s\n", batch.Len(), outDir)
	return nil
}

// resolveBatch merges the manifest, if any, with the flags. Flags win.
func resolveBatch(opts convertOptions) (model.ConversionMode, string, []string, error) {
	var (
		mode   model.ConversionMode
		outDir = opts.OutDir
		files  []string
	)

	if opts.Manifest != "" {
		m, err := manifest.Load(opts.Manifest)
		if err != nil {
			return "", "", nil, err
		}
		mode = m.Mode
		files = append(files, m.Files...)
		if outDir == "" {
			outDir = m.OutputDir
		}
	}

	if opts.Mode != "" {
		parsed, err := model.ParseMode(opts.Mode)
		if err != nil {
			return "", "", nil, err
		}
		mode = parsed
	}
	if mode == "" {
		return "", "", nil, errors.New("conversion mode is required (--mode or a manifest)")
	}

	// Manifest entries are absolute; arguments must be too for duplicates to match
	for _, file := range opts.Files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return "", "", nil, fmt.Errorf("failed to resolve %s: %w", file, err)
		}
		files = append(files, abs)
	}
	return mode, outDir, files, nil
}
