package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-picker/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	overwriteCheck   *widget.Check
	retryEntry       *widget.Entry
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs after
// the settings are persisted.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, window, localization, onSaved)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
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
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder(sd.localization.GetText(KeyDestination))

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Overwrite existing files
	sd.overwriteCheck = widget.NewCheck(sd.localization.GetText(KeyOverwriteExisting), nil)

	// Retry attempts
	sd.retryEntry = widget.NewEntry()
	sd.retryEntry.SetPlaceHolder("0-10")

	// Auto-reveal completed downloads
	sd.autoRevealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoReveal), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(IconFolder+" "+sd.localization.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		sd.overwriteCheck,

		widget.NewLabel(sd.localization.GetText(KeyRetryAttempts)+":"),
		sd.retryEntry,

		sd.autoRevealCheck,

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
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.overwriteCheck.SetChecked(sd.settings.GetOverwriteExisting())
	sd.retryEntry.SetText(strconv.Itoa(sd.settings.GetRetryAttempts()))
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}

	sd.settings.SetOverwriteExisting(sd.overwriteCheck.Checked)

	if sd.retryEntry.Text != "" {
		if attempts, err := strconv.Atoi(sd.retryEntry.Text); err == nil {
			sd.settings.SetRetryAttempts(attempts)
		}
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
