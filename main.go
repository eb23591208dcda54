package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/deskpin/deskpin/internal/chat"
	"github.com/deskpin/deskpin/internal/liststore"
	"github.com/deskpin/deskpin/internal/mirror"
	"github.com/deskpin/deskpin/internal/model"
	"github.com/deskpin/deskpin/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.deskpin.deskpin"
	AppName = "DeskPin"

	WindowWidth  = 340
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("DeskPin v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// The mirror is the authoritative in-memory copy of every list; each
	// store persists its own list through app preferences
	service := mirror.NewStore()
	persister := liststore.NewPrefsPersister(myApp.Preferences())

	clips := liststore.New(model.KindClipboard, service, persister)
	links := liststore.New(model.KindLink, service, persister)
	tasks := liststore.New(model.KindTask, service, persister)

	// Chat history lives in the user config dir; the assistant window still
	// works without it, just without persistence
	history := openChatHistory()
	if history != nil {
		defer history.Close()
	}

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, clips, links, tasks, history)
	defer rootUI.Shutdown()

	// Show and run
	myWindow.ShowAndRun()
}

// openChatHistory opens the persistent assistant transcript store
func openChatHistory() *chat.History {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Failed to resolve config dir: %v", err)
		return nil
	}

	dir := filepath.Join(configDir, "deskpin", "chat")
	history, err := chat.OpenHistory(dir)
	if err != nil {
		log.Printf("Failed to open chat history at %s: %v", dir, err)
		return nil
	}
	return history
}
