package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/deskpin/deskpin/internal/config"
	"github.com/deskpin/deskpin/internal/grammar"
	"github.com/deskpin/deskpin/internal/imagegen"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// Called after a confirmed save so dependents can rebuild services
	onSaved func()

	// UI components
	grammarURLEntry   *widget.Entry
	grammarKeyEntry   *widget.Entry
	grammarModelEntry *widget.Entry
	geminiKeyEntry    *widget.Entry
	chatModelEntry    *widget.Entry
	imageModelEntry   *widget.Entry
	watchCheck        *widget.Check
	intervalEntry     *widget.Entry
	imagesDirEntry    *widget.Entry
	languageSelect    *widget.Select
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

// SetOnSaved registers a callback invoked after settings are saved
func (sd *SettingsDialog) SetOnSaved(callback func()) {
	sd.onSaved = callback
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Grammar checker endpoint
	sd.grammarURLEntry = widget.NewEntry()
	sd.grammarURLEntry.SetPlaceHolder(grammar.DefaultBaseURL)

	sd.grammarKeyEntry = widget.NewPasswordEntry()
	sd.grammarKeyEntry.SetPlaceHolder("sk-...")

	sd.grammarModelEntry = widget.NewEntry()
	sd.grammarModelEntry.SetPlaceHolder(grammar.DefaultModel)

	// Gemini credentials shared by chat and image generation
	sd.geminiKeyEntry = widget.NewPasswordEntry()

	sd.chatModelEntry = widget.NewEntry()
	sd.chatModelEntry.SetPlaceHolder(sd.settings.GetChatModel())

	sd.imageModelEntry = widget.NewEntry()
	sd.imageModelEntry.SetPlaceHolder(imagegen.DefaultModel)

	// Clipboard watcher
	sd.watchCheck = widget.NewCheck(sd.localization.GetText(KeyWatchClipboard), nil)

	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder("100-10000")

	// Images directory selection
	sd.imagesDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	imagesDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.imagesDirEntry)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyGrammarSection)),
		widget.NewSeparator(),

		widget.NewLabel("Base URL:"),
		sd.grammarURLEntry,

		widget.NewLabel("API Key:"),
		sd.grammarKeyEntry,

		widget.NewLabel("Model:"),
		sd.grammarModelEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyGeminiSection)),
		widget.NewSeparator(),

		widget.NewLabel("API Key:"),
		sd.geminiKeyEntry,

		widget.NewLabel("Chat Model:"),
		sd.chatModelEntry,

		widget.NewLabel("Image Model:"),
		sd.imageModelEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyClipboardSection)),
		widget.NewSeparator(),

		sd.watchCheck,

		widget.NewLabel(sd.localization.GetText(KeyPollInterval)+":"),
		sd.intervalEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyImagesDirectory)+":"),
		imagesDirRow,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.grammarURLEntry.SetText(sd.settings.GetGrammarBaseURL())
	sd.grammarKeyEntry.SetText(sd.settings.GetGrammarAPIKey())
	sd.grammarModelEntry.SetText(sd.settings.GetGrammarModel())
	sd.geminiKeyEntry.SetText(sd.settings.GetGeminiAPIKey())
	sd.chatModelEntry.SetText(sd.settings.GetChatModel())
	sd.imageModelEntry.SetText(sd.settings.GetImageModel())
	sd.watchCheck.SetChecked(sd.settings.GetClipboardWatchEnabled())
	sd.intervalEntry.SetText(strconv.Itoa(int(sd.settings.GetClipboardInterval().Milliseconds())))
	sd.imagesDirEntry.SetText(sd.settings.GetImagesDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles images directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.imagesDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetGrammarBaseURL(sd.grammarURLEntry.Text)
	sd.settings.SetGrammarAPIKey(sd.grammarKeyEntry.Text)
	sd.settings.SetGrammarModel(sd.grammarModelEntry.Text)
	sd.settings.SetGeminiAPIKey(sd.geminiKeyEntry.Text)
	sd.settings.SetChatModel(sd.chatModelEntry.Text)
	sd.settings.SetImageModel(sd.imageModelEntry.Text)
	sd.settings.SetClipboardWatchEnabled(sd.watchCheck.Checked)

	if ms, err := strconv.Atoi(sd.intervalEntry.Text); err == nil {
		sd.settings.SetClipboardIntervalMS(ms)
	}

	if sd.imagesDirEntry.Text != "" {
		sd.settings.SetImagesDirectory(sd.imagesDirEntry.Text)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
