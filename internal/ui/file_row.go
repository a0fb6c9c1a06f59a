package ui

import (
	"image/color"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/office-converter/internal/model"
)

// FileRow is a compact list row for one selected input file
type FileRow struct {
	widget.BaseWidget

	entry        model.FileEntry
	status       FileStatus
	localization *Localization

	// Action callback
	onRemove func(path string)

	// UI components
	nameLabel   *widget.Label
	folderLabel *widget.Label
	statusLabel *widget.Label
	removeBtn   *widget.Button
}

// NewFileRow creates a new file row widget
func NewFileRow(localization *Localization) *FileRow {
	fr := &FileRow{
		localization: localization,
	}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

// Update shows entry with the given status
func (fr *FileRow) Update(entry model.FileEntry, status FileStatus) {
	fr.entry = entry
	fr.status = status
	fr.updateFromEntry()
	fr.Refresh()
}

// Entry returns the file shown by the row
func (fr *FileRow) Entry() model.FileEntry {
	return fr.entry
}

// SetOnRemove sets the callback of the row's remove button
func (fr *FileRow) SetOnRemove(onRemove func(path string)) {
	fr.onRemove = onRemove
}

// SetRemoveEnabled enables the remove button; rows are locked while a batch runs
func (fr *FileRow) SetRemoveEnabled(enabled bool) {
	if enabled {
		fr.removeBtn.Enable()
	} else {
		fr.removeBtn.Disable()
	}
}

// createUI creates the UI components
func (fr *FileRow) createUI() {
	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	fr.folderLabel = widget.NewLabel("")
	fr.folderLabel.Importance = widget.LowImportance
	fr.folderLabel.Truncation = fyne.TextTruncateEllipsis

	fr.statusLabel = widget.NewLabel("")
	fr.statusLabel.Alignment = fyne.TextAlignTrailing

	fr.removeBtn = widget.NewButton(IconRemove, func() {
		// Read the entry at click time; rows are reused by the list
		path := fr.entry.Path
		if path == "" {
			return
		}
		if fr.onRemove == nil {
			log.Printf("onRemove callback is nil for %s", path)
			return
		}
		fr.onRemove(path)
	})
	fr.removeBtn.Importance = widget.LowImportance
}

// updateFromEntry updates UI components based on the entry and status
func (fr *FileRow) updateFromEntry() {
	fr.nameLabel.SetText(IconFile + " " + fr.entry.Name)
	fr.folderLabel.SetText(IconFolder + " " + filepath.Dir(fr.entry.Path))

	switch fr.status {
	case FileStatusQueued:
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText(IconQueued + " " + fr.localization.GetText(KeyStatusQueued))
	case FileStatusConverting:
		fr.statusLabel.Importance = widget.HighImportance
		fr.statusLabel.SetText(IconRunning + " " + fr.localization.GetText(KeyStatusConverting))
	case FileStatusConverted:
		fr.statusLabel.Importance = widget.SuccessImportance
		fr.statusLabel.SetText(IconDone + " " + fr.localization.GetText(KeyStatusConverted))
	case FileStatusFailed:
		fr.statusLabel.Importance = widget.DangerImportance
		fr.statusLabel.SetText(IconError + " " + fr.localization.GetText(KeyStatusFailed))
	default:
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText("")
	}
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	return &fileRowRenderer{fileRow: fr}
}

// fileRowRenderer renders the file row widget
type fileRowRenderer struct {
	fileRow *FileRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *fileRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *fileRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		return fyne.NewSize(RowMinWidth, RowMinHeight)
	}
	return r.layout.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *fileRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *fileRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *fileRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *fileRowRenderer) createLayout() {
	fr := r.fileRow

	// Fixed-width status column using a transparent rectangle underneath
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(StatusLabelWidth, fr.statusLabel.MinSize().Height))
	status := container.NewStack(spacer, fr.statusLabel)

	// Name takes the remaining width, the folder sits under it
	text := container.NewVBox(fr.nameLabel, fr.folderLabel)

	actions := container.NewHBox(status, fr.removeBtn)

	r.layout = container.NewBorder(nil, nil, nil, actions, text)
}
