package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/sakurazen/soxgui/internal/config"
	"github.com/sakurazen/soxgui/internal/runner"
	"github.com/sakurazen/soxgui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.sakurazen.soxgui"
	AppName = "SoX GUI"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon := ui.LoadAppIcon(); icon != nil {
		myWindow.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	if path := settings.DetectSoxPath(); path == "" {
		log.Printf("SoX not configured and not found on PATH")
	}

	soxRunner := runner.NewService(settings.GetSoxPath())
	soxRunner.SetTimeout(settings.GetRunTimeout())

	root := ui.NewRootUI(myWindow, myApp, soxRunner)

	// The first argument is opened as the input file
	if len(os.Args) > 1 {
		root.OpenInputFile(os.Args[1])
	}

	myWindow.ShowAndRun()
}
