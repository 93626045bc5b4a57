package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/gradebook/internal/config"
	"github.com/ytget/gradebook/internal/gradebook"
	"github.com/ytget/gradebook/internal/store"
	"github.com/ytget/gradebook/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.gradebook"

	WindowWidth  = 900
	WindowHeight = 600
)

func main() {
	log.Printf("Gradebook v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)

	// A malformed data file stops the app instead of being overwritten by the
	// next save.
	gradeStore := store.NewStore(settings.GetDataFile())
	if !gradeStore.Exists() {
		log.Printf("No data file at %s, starting with an empty gradebook", gradeStore.Path())
	}
	tracker := gradebook.NewService(gradeStore)
	if err := tracker.Open(); err != nil {
		if store.IsParseError(err) {
			log.Fatalf("Cannot start: %s is not a gradebook file, fix or move it: %v", gradeStore.Path(), err)
		}
		log.Fatalf("Cannot start: %v", err)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("Gradebook v%s", version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, tracker, settings)

	myWindow.ShowAndRun()
}
