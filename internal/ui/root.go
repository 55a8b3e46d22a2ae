package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-picker/internal/config"
	"github.com/ytget/yt-picker/internal/model"
	"github.com/ytget/yt-picker/internal/platform"
	"github.com/ytget/yt-picker/internal/worker"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	state        *ControllerState
	bridge       *worker.Bridge
	settings     *config.Settings
	localization *Localization

	// Top panel
	urlEntry *widget.Entry
	fetchBtn *widget.Button

	// Format list
	formatsLabel *widget.Label
	formatList   *widget.List

	// Destination row
	destEntry   *widget.Entry
	browseBtn   *widget.Button
	downloadBtn *widget.Button

	// Status panel
	statusLabel *widget.Label
	progressBar *widget.ProgressBar
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, bridge *worker.Bridge) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	downloadsDir := settings.GetDownloadDirectory()
	platform.CreateDirectoryIfNotExists(downloadsDir)

	ui := &RootUI{
		window:       window,
		state:        NewControllerState(downloadsDir),
		bridge:       bridge,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Worker callbacks arrive on the job goroutine; handlers marshal back to
	// the interaction thread with fyne.Do.
	bridge.SetCallbacks(worker.Callbacks{
		OnProbeResult: ui.onProbeResult,
		OnProgress:    ui.onProgress,
		OnComplete:    ui.onDownloadComplete,
		OnError:       ui.onJobError,
	})
	bridge.SetRetryAttempts(settings.GetRetryAttempts())

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL entry with fetch button
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = func(input string) error {
		if strings.TrimSpace(input) == "" {
			return nil // Empty is allowed
		}
		return ui.state.ValidateURL(input)
	}
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}

	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyFetchFormats), ui.onFetchClick)
	ui.fetchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.fetchBtn, ui.urlEntry)

	// Format list
	ui.formatsLabel = widget.NewLabel(ui.localization.GetText(KeyAvailableFormats))
	ui.formatsLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.formatList = widget.NewList(
		func() int {
			return ui.state.FormatCount()
		},
		func() fyne.CanvasObject {
			return NewFormatRow(model.FormatDescriptor{})
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			fd, ok := ui.state.FormatAt(id)
			if !ok {
				return
			}
			if row, isRow := obj.(*FormatRow); isRow {
				row.UpdateDescriptor(fd)
			}
		},
	)
	ui.formatList.OnSelected = ui.onFormatSelected

	// Destination row with download button
	ui.destEntry = widget.NewEntry()
	ui.destEntry.SetPlaceHolder(ui.localization.GetText(KeyDestination))
	ui.destEntry.SetText(ui.state.DestDir)
	ui.destEntry.OnChanged = func(text string) {
		ui.state.DestDir = text
		ui.refreshControls()
	}

	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseDestination)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable()

	destRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.browseBtn, ui.downloadBtn), ui.destEntry)

	// Status panel with progress bar
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()

	bottomPanel := container.NewVBox(destRow, ui.progressBar, ui.statusLabel)

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.formatsLabel), // top
		bottomPanel,   // bottom
		nil,           // left
		nil,           // right
		ui.formatList, // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
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
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.destEntry.SetPlaceHolder(ui.localization.GetText(KeyDestination))
	ui.fetchBtn.SetText(ui.localization.GetText(KeyFetchFormats))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.formatsLabel.SetText(ui.localization.GetText(KeyAvailableFormats))
}

// onFetchClick handles the fetch-formats button click
func (ui *RootUI) onFetchClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showStatus(ui.localization.GetText(KeyPleaseEnterURL))
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterURL)), ui.window.Canvas())
		return
	}

	if err := ui.state.ValidateURL(urlText); err != nil {
		ui.showStatus(ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
		return
	}

	log.Printf("Fetching formats for URL: %s", urlText)

	ui.state.URL = urlText
	if err := ui.bridge.StartProbe(urlText); err != nil {
		ui.showStatus(ui.localization.GetText(KeyJobInFlight))
		return
	}

	ui.state.Status = model.JobStatusProbing
	ui.showStatus(ui.localization.GetText(KeyFetchingFormats))
	ui.refreshControls()
}

// onFormatSelected handles a click on a format row
func (ui *RootUI) onFormatSelected(id widget.ListItemID) {
	fd, ok := ui.state.FormatAt(id)
	if !ok {
		return
	}

	if err := ui.state.SelectFormat(fd.ID); err != nil {
		log.Printf("Format selection rejected: %v", err)
		return
	}

	log.Printf("Selected format %s (%s)", fd.ID, fd.Label())
	ui.refreshControls()
}

// onBrowseDestination opens the folder picker for the destination directory
func (ui *RootUI) onBrowseDestination() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.destEntry.SetText(uri.Path())
	}, ui.window)
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	req, err := ui.state.BuildRequest()
	if err != nil {
		switch err {
		case model.ErrNoFormat:
			ui.showStatus(ui.localization.GetText(KeySelectFormat))
		case model.ErrNoDestination:
			ui.showStatus(ui.localization.GetText(KeyChooseDestination))
		default:
			ui.showStatus(err.Error())
		}
		return
	}

	// Overwrite guard: predict the output filename and refuse to clobber an
	// existing file unless overwrite is enabled in settings.
	if !ui.settings.GetOverwriteExisting() && ui.state.Result != nil {
		predicted := platform.PredictOutputPath(req.DestDir, ui.state.Result.Title, req.Ext)
		if platform.FileExists(predicted) {
			log.Printf("Refusing to overwrite existing file: %s", predicted)
			ui.showStatus(ui.localization.GetText(KeyFileExists))
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyFileExists)), ui.window.Canvas())
			return
		}
	}

	if err := ui.bridge.StartDownload(req); err != nil {
		ui.showStatus(ui.localization.GetText(KeyJobInFlight))
		return
	}

	ui.state.Status = model.JobStatusDownloading
	ui.state.Progress = model.ProgressEvent{}
	ui.progressBar.SetValue(0)
	ui.progressBar.Show()
	ui.showStatus(ui.localization.GetText(KeyDownloading))
	ui.refreshControls()
}

// onProbeResult handles a finished probe. Called from the worker goroutine.
func (ui *RootUI) onProbeResult(result *model.ProbeResult) {
	fyne.Do(func() {
		ui.state.ApplyProbeResult(result)
		ui.state.Status = model.JobStatusIdle

		ui.formatList.UnselectAll()
		ui.formatList.Refresh()

		if len(result.Formats) == 0 {
			ui.showStatus(ui.localization.GetText(KeyNoFormats))
		} else {
			ui.showStatus(fmt.Sprintf(ui.localization.GetText(KeyFormatsFound),
				len(result.Formats), result.Title))
		}
		ui.refreshControls()
	})
}

// onProgress handles a download progress event. Called from the worker goroutine.
func (ui *RootUI) onProgress(event model.ProgressEvent) {
	fyne.Do(func() {
		ui.state.Progress = event
		ui.progressBar.SetValue(event.Percent / 100)

		status := fmt.Sprintf("%s %.1f%%", ui.localization.GetText(KeyDownloading), event.Percent)
		if event.Speed != "" {
			status += model.MiddleDotSeparator + event.Speed
		}
		ui.statusLabel.SetText(status)
	})
}

// onDownloadComplete handles a finished download. Called from the worker goroutine.
func (ui *RootUI) onDownloadComplete() {
	fyne.Do(func() {
		ui.state.Status = model.JobStatusCompleted
		ui.progressBar.SetValue(1)
		ui.showStatus(ui.localization.GetText(KeyDownloadCompleted))
		ui.refreshControls()

		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyAppTitle),
			Content: ui.localization.GetText(KeyDownloadCompleted),
		})

		if ui.settings.GetAutoRevealOnComplete() && ui.state.Result != nil {
			fd, ok := ui.state.SelectedFormat()
			if !ok {
				return
			}
			path := platform.PredictOutputPath(ui.state.DestDir, ui.state.Result.Title, fd.Ext)
			if platform.FileExists(path) {
				ui.revealFile(path)
			}
		}
	})
}

// onJobError handles a failed probe or download. Called from the worker
// goroutine. The message is shown verbatim; the previous format list stays.
func (ui *RootUI) onJobError(message string) {
	fyne.Do(func() {
		ui.state.Status = model.JobStatusError
		ui.progressBar.Hide()
		ui.showStatus(IconError + " " + message)
		ui.refreshControls()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.bridge.SetRetryAttempts(ui.settings.GetRetryAttempts())
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// revealFile shows the downloaded file in the system file manager
func (ui *RootUI) revealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing file %s: %v", path, err)
		ui.showStatus(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// showStatus sets the status line text
func (ui *RootUI) showStatus(message string) {
	ui.statusLabel.SetText(message)
}

// refreshControls syncs button enabled states with the controller state
func (ui *RootUI) refreshControls() {
	if ui.state.Status.IsBusy() {
		ui.fetchBtn.Disable()
	} else {
		ui.fetchBtn.Enable()
	}

	if ui.state.CanDownload() {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}
}
