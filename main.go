package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/func-grapher/internal/config"
	"github.com/ytget/func-grapher/internal/plot"
	"github.com/ytget/func-grapher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.func-grapher"
	AppName = "Function Grapher"

	WindowWidth  = 600
	WindowHeight = 500
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply grapher theme
	myApp.Settings().SetTheme(ui.NewGrapherTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	grapher, err := plot.NewService(settings.Viewport())
	if err != nil {
		log.Fatalf("failed to create plot service: %v", err)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, grapher, settings)

	// Show and run
	myWindow.ShowAndRun()
}
