package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"google.golang.org/genai"

	"github.com/deskpin/deskpin/internal/chat"
	"github.com/deskpin/deskpin/internal/clipwatch"
	"github.com/deskpin/deskpin/internal/config"
	"github.com/deskpin/deskpin/internal/grammar"
	"github.com/deskpin/deskpin/internal/imagegen"
	"github.com/deskpin/deskpin/internal/liststore"
)

// RootUI represents the main UI structure: the toolbar, the tab strip with
// the three item lists and the tool panels, and the services they share
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization

	clipsPanel   *ListPanel
	linksPanel   *ListPanel
	tasksPanel   *ListPanel
	timerPanel   *TimerPanel
	grammarPanel *GrammarPanel
	imagesPanel  *ImagesPanel
	chatWindow   *ChatWindow

	tabs           *container.AppTabs
	settingsDialog *SettingsDialog
	watcher        *clipwatch.Watcher
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, clips, links, tasks *liststore.Store, history *chat.History) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.clipsPanel = NewListPanel(app, window, clips, localization)
	ui.linksPanel = NewListPanel(app, window, links, localization)
	ui.tasksPanel = NewListPanel(app, window, tasks, localization)
	ui.timerPanel = NewTimerPanel(app, localization)
	ui.grammarPanel = NewGrammarPanel(app, ui.buildGrammarChecker(), localization)
	ui.imagesPanel = NewImagesPanel(app, nil, settings, localization)
	ui.chatWindow = NewChatWindow(app, nil, history, localization)

	ui.rebuildAIServices()

	ui.setupUI()
	ui.applyWatcherSettings()

	// Load the persisted lists; renders arrive through the store callbacks
	go clips.Load(context.Background())
	go links.Load(context.Background())
	go tasks.Load(context.Background())

	log.Printf("RootUI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window)
	ui.settingsDialog.SetOnSaved(ui.onSettingsSaved)

	// Toolbar: logo, title, then chat and settings on the right
	settingsBtn := widget.NewButton(IconSettings, ui.settingsDialog.Show)
	settingsBtn.Importance = widget.LowImportance
	chatBtn := widget.NewButton(IconChat, ui.chatWindow.Show)
	chatBtn.Importance = widget.LowImportance

	titleLabel := widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	var left fyne.CanvasObject = titleLabel
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(24, 24))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, titleLabel)
	}

	toolbar := container.NewBorder(nil, nil, left, container.NewHBox(chatBtn, settingsBtn), nil)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabClips), ui.clipsPanel.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabLinks), ui.linksPanel.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabTasks), ui.tasksPanel.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabTimer), ui.timerPanel.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabCheck), ui.grammarPanel.Content()),
		container.NewTabItem(ui.localization.GetText(KeyTabImages), ui.imagesPanel.Content()),
	)

	content := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		ui.tabs, // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), func() {
		ui.settingsDialog.Show()
	})
	chatItem := fyne.NewMenuItem(ui.localization.GetText(KeyChatTitle), func() {
		ui.chatWindow.Show()
	})

	// Language submenu
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
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, chatItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	if ui.tabs != nil && len(ui.tabs.Items) == 6 {
		ui.tabs.Items[0].Text = ui.localization.GetText(KeyTabClips)
		ui.tabs.Items[1].Text = ui.localization.GetText(KeyTabLinks)
		ui.tabs.Items[2].Text = ui.localization.GetText(KeyTabTasks)
		ui.tabs.Items[3].Text = ui.localization.GetText(KeyTabTimer)
		ui.tabs.Items[4].Text = ui.localization.GetText(KeyTabCheck)
		ui.tabs.Items[5].Text = ui.localization.GetText(KeyTabImages)
		ui.tabs.Refresh()
	}

	ui.clipsPanel.RefreshTexts()
	ui.linksPanel.RefreshTexts()
	ui.tasksPanel.RefreshTexts()
	ui.timerPanel.RefreshTexts()
	ui.grammarPanel.RefreshTexts()
	ui.imagesPanel.RefreshTexts()

	// The settings dialog reads texts at creation time
	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window)
	ui.settingsDialog.SetOnSaved(ui.onSettingsSaved)
}

// onSettingsSaved rebuilds the services whose configuration changed
func (ui *RootUI) onSettingsSaved() {
	ui.grammarPanel.SetChecker(ui.buildGrammarChecker())
	ui.rebuildAIServices()
	ui.applyWatcherSettings()

	if ui.settings.GetLanguage() != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}
}

// buildGrammarChecker creates a checker from the current settings
func (ui *RootUI) buildGrammarChecker() grammar.Checker {
	return grammar.NewService(
		ui.settings.GetGrammarBaseURL(),
		ui.settings.GetGrammarAPIKey(),
		ui.settings.GetGrammarModel(),
	)
}

// rebuildAIServices recreates the Gemini-backed chat and image services.
// Without an API key both stay unset and their panels show a hint instead.
func (ui *RootUI) rebuildAIServices() {
	key := ui.settings.GetGeminiAPIKey()
	if key == "" {
		ui.chatWindow.SetResponder(nil)
		ui.imagesPanel.SetGenerator(nil)
		return
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: key})
	if err != nil {
		log.Printf("Failed to create Gemini client: %v", err)
		ui.chatWindow.SetResponder(nil)
		ui.imagesPanel.SetGenerator(nil)
		return
	}

	ui.chatWindow.SetResponder(chat.NewService(client, ui.settings.GetChatModel()))
	ui.imagesPanel.SetGenerator(imagegen.NewService(client, ui.settings.GetImageModel()))
}

// applyWatcherSettings restarts the clipboard watcher to match the current
// settings. Captures land in the clips list.
func (ui *RootUI) applyWatcherSettings() {
	if ui.watcher != nil {
		ui.watcher.Stop()
		ui.watcher = nil
	}

	if !ui.settings.GetClipboardWatchEnabled() {
		return
	}

	ui.watcher = clipwatch.NewWatcher(ui.app.Clipboard(), ui.settings.GetClipboardInterval())
	ui.watcher.SetCaptureCallback(func(text string) {
		ui.clipsPanel.AddText(text)
	})
	ui.watcher.Start()
	log.Printf("Clipboard watcher started with interval %s", ui.settings.GetClipboardInterval())
}

// Shutdown stops background work before the app exits
func (ui *RootUI) Shutdown() {
	if ui.watcher != nil {
		ui.watcher.Stop()
	}
}
