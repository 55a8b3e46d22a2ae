package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-picker/internal/config"
	"github.com/ytget/yt-picker/internal/engine"
	"github.com/ytget/yt-picker/internal/platform"
	"github.com/ytget/yt-picker/internal/ui"
	"github.com/ytget/yt-picker/internal/worker"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-picker"
	AppName = "YT Picker"

	WindowWidth  = 520
	WindowHeight = 480
)

func main() {
	fmt.Printf("YT Picker v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	bridge := worker.NewBridge(engine.NewClient())

	ui.NewRootUI(myWindow, myApp, bridge)

	myWindow.ShowAndRun()
}
