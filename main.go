package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/office-converter/internal/config"
	"github.com/ytget/office-converter/internal/convert"
	"github.com/ytget/office-converter/internal/platform"
	"github.com/ytget/office-converter/internal/runner"
	"github.com/ytget/office-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.office-converter"
	AppName = "Office Converter"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	// The binary is resolved again before every batch; a missing LibreOffice
	// is reported when the user converts, not at startup
	binary, err := platform.FindOfficeBinary(settings.GetOfficeBinary())
	if err != nil {
		fmt.Printf("LibreOffice not found yet: %v\n", err)
	}
	office := convert.NewOffice(binary)
	office.SetTimeout(settings.GetConversionTimeout())

	launcher := runner.NewLauncher(convert.NewOfficeRegistry(office))

	// Conversions still running when the window closes are stopped with their
	// LibreOffice processes
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create and setup UI
	ui.NewRootUI(ctx, myWindow, myApp, launcher, office)

	// Show and run
	myWindow.ShowAndRun()
}
