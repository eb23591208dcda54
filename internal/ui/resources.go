package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "deskpin.png"
)

// LoadLogoResource loads the app icon from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
