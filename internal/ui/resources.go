package ui

import (
	"log"

	"fyne.io/fyne/v2"
)

// AppIconFile is looked up next to the executable's working directory
const AppIconFile = "soxgui.png"

// LoadAppIcon loads the window icon. It returns nil when the file is missing.
func LoadAppIcon() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIconFile)
	if err != nil {
		log.Printf("App icon not loaded: %v", err)
		return nil
	}
	return res
}
