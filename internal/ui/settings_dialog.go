package ui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gradebook/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(dataFileChanged bool)

	// UI components
	dataFileEntry  *widget.Entry
	decimalsEntry  *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(dataFileChanged bool)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
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
	sd.dataFileEntry = widget.NewEntry()
	sd.dataFileEntry.SetPlaceHolder(config.DefaultDataFile)

	sd.decimalsEntry = widget.NewEntry()
	sd.decimalsEntry.SetPlaceHolder("0-4")
	sd.decimalsEntry.Validator = func(text string) error {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		if _, err := strconv.Atoi(strings.TrimSpace(text)); err != nil {
			return errors.New(sd.localization.GetText(KeyInvalidDecimals))
		}
		return nil
	}

	// Language selection shows display names and stores codes
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDataFile)+":"),
		sd.dataFileEntry,

		widget.NewLabel(sd.localization.GetText(KeyDisplayDecimals)+":"),
		sd.decimalsEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataFileEntry.SetText(sd.settings.GetDataFile())
	sd.decimalsEntry.SetText(strconv.Itoa(sd.settings.GetDisplayDecimals()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	dataFileChanged := false
	if dataFile := strings.TrimSpace(sd.dataFileEntry.Text); dataFile != "" && dataFile != sd.settings.GetDataFile() {
		sd.settings.SetDataFile(dataFile)
		dataFileChanged = true
	}

	if decimals, err := strconv.Atoi(strings.TrimSpace(sd.decimalsEntry.Text)); err == nil {
		sd.settings.SetDisplayDecimals(decimals)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved(dataFileChanged)
	}
}
