package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/office-converter/internal/config"
	"github.com/ytget/office-converter/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry *widget.Entry
	officeEntry    *widget.Entry
	pacingEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	revealCheck    *widget.Check
	languageSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the user saves.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Output directory selection
	sd.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	// LibreOffice executable; empty means auto-detect
	sd.officeEntry = widget.NewEntry()
	sd.officeEntry.SetPlaceHolder(text(KeyAutoDetect))
	detectBtn := widget.NewButton(text(KeyAutoDetect), sd.onDetectOffice)
	officeRow := container.NewBorder(nil, nil, nil, detectBtn, sd.officeEntry)

	sd.pacingEntry = widget.NewEntry()
	sd.pacingEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxPacingMillis))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinTimeoutSeconds) + "-" + strconv.Itoa(config.MaxTimeoutSeconds))

	sd.revealCheck = widget.NewCheck(text(KeyRevealOnComplete), nil)

	// Language selection shows display names, stores codes
	sd.languageCodes = make(map[string]string)
	var languageOptions []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyConversionSection)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyOutputDirectory)+":"),
		outputDirRow,

		widget.NewLabel(text(KeyOfficeBinary)+":"),
		officeRow,

		widget.NewLabel(text(KeyPacingDelay)+":"),
		sd.pacingEntry,

		widget.NewLabel(text(KeyTimeout)+":"),
		sd.timeoutEntry,

		sd.revealCheck,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.officeEntry.SetText(sd.settings.GetOfficeBinary())
	sd.pacingEntry.SetText(strconv.FormatInt(sd.settings.GetPacingDelay().Milliseconds(), 10))
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetConversionTimeout() / time.Second)))
	sd.revealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onDetectOffice fills the executable field with the auto-detected LibreOffice
func (sd *SettingsDialog) onDetectOffice() {
	path, err := platform.FindOfficeBinary("")
	if err != nil {
		dialog.ShowError(err, sd.window)
		return
	}
	sd.officeEntry.SetText(path)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values to settings; invalid numbers are ignored
func (sd *SettingsDialog) apply() {
	if dir := strings.TrimSpace(sd.outputDirEntry.Text); dir != "" {
		sd.settings.SetOutputDirectory(dir)
	}

	sd.settings.SetOfficeBinary(strings.TrimSpace(sd.officeEntry.Text))

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.pacingEntry.Text)); err == nil {
		sd.settings.SetPacingDelay(time.Duration(ms) * time.Millisecond)
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetConversionTimeout(time.Duration(seconds) * time.Second)
	}

	sd.settings.SetAutoRevealOnComplete(sd.revealCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
