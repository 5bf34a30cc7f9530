package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/flexlab/internal/batch"
	"github.com/ytget/flexlab/internal/config"
	"github.com/ytget/flexlab/internal/export"
)

const (
	AppID   = "com.ytget.flexlab"
	AppName = "Flexural Modulus Analyzer"
)

// Launch creates the Fyne application, shows the analyzer window and blocks
// until it is closed. A non-nil params overrides the stored settings for this
// run.
func Launch(version string, params *config.Params, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info(fmt.Sprintf("%s v%s starting...", AppName, version))

	myApp := app.NewWithID(AppID)
	if icon, err := LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	// Apply compact theme
	myApp.Settings().SetTheme(NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	exportSvc := export.NewService(logger)
	maxParallel, regionSize := settings.GetMaxParallel(), config.DefaultRegionSize
	if params != nil {
		maxParallel, regionSize = params.MaxParallel, params.RegionSize
	}
	batchSvc := batch.NewService(maxParallel, regionSize, logger)

	root := NewRootUI(myWindow, myApp, exportSvc, batchSvc, params, logger)
	myWindow.SetOnClosed(root.Close)

	myWindow.ShowAndRun()
}
