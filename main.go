package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"colorpicker/pkg/apptheme"
	"colorpicker/pkg/logger"
	"colorpicker/pkg/options"
	"colorpicker/pkg/pickerstate"
	"colorpicker/pkg/platform"
	"colorpicker/pkg/profiling"
	"colorpicker/pkg/sampler"
	"colorpicker/pkg/uithread"

	"fyne.io/fyne/v2/app"
)

func main() {
	appLogger := logger.InitLogger("colorpicker")

	opts, err := options.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		appLogger.Println(err)
		os.Exit(2)
	}

	stopProfiling, err := profiling.SetupProfiling(opts, appLogger)
	if err != nil {
		appLogger.Println("Failed to start profiling:", err)
	}
	defer stopProfiling()

	// cosmetic, unsupported outside windows
	_ = platform.SetAppID(opts.AppID)
	_ = platform.EnableDPIAwareness()

	a := app.NewWithID(opts.AppID)
	a.Settings().SetTheme(apptheme.PickerTheme{})
	w := setupMainWindow(a, opts, appLogger)

	state := pickerstate.New()
	p := newPicker(opts, state, w.Clipboard(), uithread.Fyne())
	defer p.close()
	w.SetContent(p.content())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	screen := sampler.New(state, sampler.NewGoHook(), sampler.ScreenReader{}, uithread.Fyne(), opts.SampleQueueSize, appLogger)
	if err := screen.Run(ctx); err != nil {
		appLogger.Println("Screen sampling disabled:", err)
	}
	defer screen.Stop()

	w.ShowAndRun()
}
