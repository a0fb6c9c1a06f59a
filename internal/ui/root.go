package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/office-converter/internal/config"
	"github.com/ytget/office-converter/internal/convert"
	"github.com/ytget/office-converter/internal/model"
	"github.com/ytget/office-converter/internal/platform"
	"github.com/ytget/office-converter/internal/runner"
	"github.com/ytget/office-converter/internal/tasklist"
)

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	tasks        *tasklist.Manager
	launcher     *runner.Launcher
	office       *convert.Office

	// findOffice resolves the LibreOffice executable before each batch
	findOffice func(configured string) (string, error)
	// openFolder reveals the output folder after a successful batch
	openFolder func(dir string) error

	// UI components
	modeLabel   *widget.Label
	modeSelect  *widget.Select
	hintLabel   *widget.Label
	countLabel  *widget.Label
	fileList    *widget.List
	addBtn      *widget.Button
	removeBtn   *widget.Button
	clearBtn    *widget.Button
	convertBtn  *widget.Button
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	// State shared with runner callbacks
	mu       sync.Mutex
	files    []model.FileEntry
	selected int
	running  bool
	progress *batchProgress
}

// NewRootUI creates and initializes the main UI. ctx bounds every conversion
// started from the window.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, launcher *runner.Launcher, office *convert.Office) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		settings:     settings,
		localization: localization,
		tasks:        tasklist.NewManager(settings.GetConversionMode()),
		launcher:     launcher,
		office:       office,
		findOffice:   platform.FindOfficeBinary,
		openFolder:   platform.OpenFolder,
		selected:     -1,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// List mutations come from UI actions on the main thread
	ui.tasks.SetChangeCallback(ui.onTasksChanged)

	ui.setupUI()
	log.Printf("RootUI initialized in mode %s", ui.tasks.Mode())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	text := ui.localization.GetText

	// Mode selector
	ui.modeLabel = widget.NewLabel(text(KeyMode) + ":")
	var labels []string
	for _, mode := range model.Modes() {
		labels = append(labels, mode.Label())
	}
	ui.modeSelect = widget.NewSelect(labels, nil)
	ui.modeSelect.SetSelected(ui.tasks.Mode().Label())
	ui.modeSelect.OnChanged = ui.onModeSelected

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	modeRow := container.NewBorder(nil, nil, ui.modeLabel, settingsBtn, ui.modeSelect)

	ui.hintLabel = widget.NewLabel("")
	ui.hintLabel.Importance = widget.LowImportance
	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Alignment = fyne.TextAlignTrailing
	hintRow := container.NewBorder(nil, nil, nil, ui.countLabel, ui.hintLabel)

	// File list
	ui.fileList = widget.NewList(
		func() int {
			ui.mu.Lock()
			defer ui.mu.Unlock()
			return len(ui.files)
		},
		func() fyne.CanvasObject {
			row := NewFileRow(ui.localization)
			row.SetOnRemove(ui.onRemoveFile)
			return row
		},
		ui.updateFileItem,
	)
	ui.fileList.OnSelected = func(id widget.ListItemID) {
		ui.mu.Lock()
		ui.selected = id
		ui.mu.Unlock()
		ui.updateControls()
	}
	ui.fileList.OnUnselected = func(widget.ListItemID) {
		ui.mu.Lock()
		ui.selected = -1
		ui.mu.Unlock()
		ui.updateControls()
	}

	// Action buttons
	ui.addBtn = widget.NewButton(text(KeyAddFiles), ui.onAddFiles)
	ui.removeBtn = widget.NewButton(text(KeyRemoveSelected), ui.onRemoveSelected)
	ui.clearBtn = widget.NewButton(text(KeyClearAll), ui.onClearAll)
	ui.convertBtn = widget.NewButton(text(KeyConvert), ui.onConvert)
	ui.convertBtn.Importance = widget.HighImportance
	buttonRow := container.NewHBox(ui.addBtn, ui.removeBtn, ui.clearBtn)
	actionRow := container.NewBorder(nil, nil, buttonRow, ui.convertBtn)

	// Progress
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = ProgressMax
	ui.statusLabel = widget.NewLabel(text(KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	top := container.NewVBox(modeRow, hintRow)
	bottom := container.NewVBox(actionRow, ui.progressBar, ui.statusLabel)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, ui.fileList))
	ui.window.SetOnDropped(ui.onDropped)

	ui.refreshList()
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.window.SetTitle(text(KeyAppTitle))
	ui.modeLabel.SetText(text(KeyMode) + ":")
	ui.addBtn.SetText(text(KeyAddFiles))
	ui.removeBtn.SetText(text(KeyRemoveSelected))
	ui.clearBtn.SetText(text(KeyClearAll))
	ui.convertBtn.SetText(text(KeyConvert))

	ui.mu.Lock()
	idle := !ui.running && ui.progress == nil
	ui.mu.Unlock()
	if idle {
		ui.statusLabel.SetText(text(KeyReady))
	}

	ui.refreshList()
}

// onModeSelected switches the conversion mode; the list is cleared on change
func (ui *RootUI) onModeSelected(label string) {
	mode, err := model.ParseMode(label)
	if err != nil {
		log.Printf("Ignoring unknown mode selection %q: %v", label, err)
		return
	}

	if _, err := ui.tasks.SetMode(mode); err != nil {
		log.Printf("Failed to change mode: %v", err)
		return
	}
	ui.settings.SetConversionMode(mode)
	ui.refreshList()
}

// onAddFiles opens a file picker filtered to the current mode's extension
func (ui *RootUI) onAddFiles() {
	ext := "." + ui.tasks.Mode().RequiredExtension()

	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.addPaths([]string{path})
	}, ui.window)
	picker.SetFilter(storage.NewExtensionFileFilter([]string{ext, strings.ToUpper(ext)}))
	picker.Show()
}

// onDropped adds files dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri.Scheme() == "file" {
			paths = append(paths, uri.Path())
		}
	}
	ui.addPaths(paths)
}

// addPaths validates and adds paths. Wrong extensions are reported;
// duplicates are skipped quietly.
func (ui *RootUI) addPaths(paths []string) {
	if ui.isRunning() || len(paths) == 0 {
		return
	}

	added, errs := ui.tasks.AddFiles(paths)
	log.Printf("Added %d of %d file(s)", added, len(paths))

	var warnings []string
	for _, err := range errs {
		if errors.Is(err, tasklist.ErrDuplicateFile) {
			continue
		}
		warnings = append(warnings, err.Error())
	}
	if len(warnings) > 0 {
		dialog.ShowInformation(
			ui.localization.GetText(KeyWarning),
			ui.localization.GetText(KeyFilesSkipped)+"\n"+strings.Join(warnings, "\n"),
			ui.window,
		)
	}
}

// onRemoveSelected removes the selected file from the list
func (ui *RootUI) onRemoveSelected() {
	ui.mu.Lock()
	selected := ui.selected
	var path string
	if selected >= 0 && selected < len(ui.files) {
		path = ui.files[selected].Path
	}
	ui.mu.Unlock()

	if path == "" {
		return
	}
	ui.fileList.UnselectAll()
	ui.tasks.RemoveFile(path)
}

// onRemoveFile removes one file from its row's remove button
func (ui *RootUI) onRemoveFile(path string) {
	if ui.isRunning() || !ui.tasks.Contains(path) {
		return
	}
	ui.fileList.UnselectAll()
	ui.tasks.RemoveFile(path)
}

// onClearAll empties the list
func (ui *RootUI) onClearAll() {
	ui.fileList.UnselectAll()
	ui.tasks.Clear()
}

// onConvert asks for the output folder and starts the batch
func (ui *RootUI) onConvert() {
	if ui.launcher.Busy() {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyBusy), ui.window)
		return
	}
	if ui.tasks.Len() == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyNoFiles), ui.window)
		return
	}

	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.settings.SetOutputDirectory(uri.Path())
		if err := ui.startBatch(uri.Path()); err != nil {
			dialog.ShowError(err, ui.window)
		}
	}, ui.window)

	if lister, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetOutputDirectory())); err == nil {
		picker.SetLocation(lister)
	}
	picker.Show()
}

// startBatch snapshots the list and hands it to the launcher
func (ui *RootUI) startBatch(outputDir string) error {
	if err := platform.EnsureWritableDir(outputDir); err != nil {
		return err
	}

	binary, err := ui.findOffice(ui.settings.GetOfficeBinary())
	if err != nil {
		log.Printf("LibreOffice lookup failed: %v", err)
		return fmt.Errorf("%s: %w", ui.localization.GetText(KeyOfficeMissing), err)
	}
	ui.office.SetBinary(binary)
	ui.office.SetTimeout(ui.settings.GetConversionTimeout())

	batch, err := ui.tasks.Snapshot(outputDir)
	if err != nil {
		return err
	}

	ui.mu.Lock()
	ui.progress = newBatchProgress(batch.Len())
	ui.running = true
	ui.mu.Unlock()

	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyReady))
	ui.updateControls()
	ui.fileList.Refresh()

	callbacks := runner.Callbacks{
		OnProgress:  ui.onProgress,
		OnCompleted: func() { ui.onCompleted(outputDir) },
		OnFailed:    ui.onFailed,
	}

	log.Printf("Starting batch %s: %d file(s) to %s", batch.ID(), batch.Len(), outputDir)
	if _, err := ui.launcher.Launch(ui.ctx, batch, callbacks, runner.WithPacing(ui.settings.GetPacingDelay())); err != nil {
		ui.mu.Lock()
		ui.running = false
		ui.progress = nil
		ui.mu.Unlock()
		ui.updateControls()
		return err
	}
	return nil
}

// onProgress runs on the runner goroutine
func (ui *RootUI) onProgress(event model.ProgressEvent) {
	ui.mu.Lock()
	if ui.progress != nil {
		ui.progress.apply(event)
	}
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.progressBar.SetValue(float64(event.Percent))
		ui.statusLabel.SetText(event.Label)
		ui.fileList.Refresh()
	})
}

// onCompleted runs on the runner goroutine
func (ui *RootUI) onCompleted(outputDir string) {
	ui.mu.Lock()
	ui.running = false
	ui.mu.Unlock()

	reveal := ui.settings.GetAutoRevealOnComplete()
	fyne.Do(func() {
		ui.updateControls()
		ui.fileList.Refresh()
		ui.statusLabel.SetText(ui.localization.GetText(KeyAllConverted))
		dialog.ShowInformation(ui.localization.GetText(KeyDone), ui.localization.GetText(KeyAllConverted), ui.window)
	})

	if reveal && ui.openFolder != nil {
		if err := ui.openFolder(outputDir); err != nil {
			log.Printf("Failed to open output folder %s: %v", outputDir, err)
		}
	}
}

// onFailed runs on the runner goroutine
func (ui *RootUI) onFailed(message string) {
	ui.mu.Lock()
	ui.running = false
	if ui.progress != nil {
		ui.progress.fail()
	}
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.updateControls()
		ui.fileList.Refresh()
		ui.statusLabel.SetText(ui.localization.GetText(KeyConversionFailed) + ": " + message)
		dialog.ShowError(errors.New(message), ui.window)
	})
}

// onTasksChanged refreshes the list after any mutation; statuses of a
// previous batch no longer apply
func (ui *RootUI) onTasksChanged() {
	ui.mu.Lock()
	ui.progress = nil
	ui.mu.Unlock()

	ui.refreshList()
}

// refreshList copies the manager's files for rendering and updates labels
func (ui *RootUI) refreshList() {
	files := ui.tasks.Files()
	ext := ui.tasks.Mode().RequiredExtension()

	ui.mu.Lock()
	ui.files = files
	if ui.selected >= len(files) {
		ui.selected = -1
	}
	ui.mu.Unlock()

	if len(files) == 0 {
		ui.hintLabel.SetText(IconDropHint + " " + fmt.Sprintf(ui.localization.GetText(KeyDropHint), ext))
	} else {
		ui.hintLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyAcceptedFiles), ext))
	}
	ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyFilesCount), len(files)))

	ui.fileList.Refresh()
	ui.updateControls()
}

// updateFileItem binds list row id to its file and status
func (ui *RootUI) updateFileItem(id widget.ListItemID, item fyne.CanvasObject) {
	ui.mu.Lock()
	if id >= len(ui.files) {
		ui.mu.Unlock()
		return
	}
	entry := ui.files[id]
	status := ui.progress.status(id)
	running := ui.running
	ui.mu.Unlock()

	if row, ok := item.(*FileRow); ok {
		row.SetOnRemove(ui.onRemoveFile)
		row.SetRemoveEnabled(!running)
		row.Update(entry, status)
	}
}

// updateControls enables buttons for the current state
func (ui *RootUI) updateControls() {
	ui.mu.Lock()
	running := ui.running
	count := len(ui.files)
	selected := ui.selected
	ui.mu.Unlock()

	setEnabled := func(w fyne.Disableable, enabled bool) {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}

	setEnabled(ui.modeSelect, !running)
	setEnabled(ui.addBtn, !running)
	setEnabled(ui.removeBtn, !running && selected >= 0 && selected < count)
	setEnabled(ui.clearBtn, !running && count > 0)
	setEnabled(ui.convertBtn, !running && count > 0)
}

// isRunning reports whether a batch started from this window is running
func (ui *RootUI) isRunning() bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.running
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}
