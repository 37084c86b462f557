package options

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

type Options struct {
	WheelSize           int // side of the square wheel canvas
	Padding             int // gap between the wheel disc and the canvas edge
	SliderWidth         int
	IndicatorRadius     float32
	SliderIndicatorHalf float32 // half height of the slider bar
	WindowWidth         float32
	WindowHeight        float32
	CopiedFor           time.Duration // how long "Copied" stays visible
	IconSize            int
	IconPaths           []string // tried in order
	AppID               string
	SampleQueueSize     int
	Profiling           bool
	ProfilerAddress     string
}

func (opts Options) InitDefault() *Options {
	return &Options{
		WheelSize:           250,
		Padding:             12,
		SliderWidth:         30,
		IndicatorRadius:     6,
		SliderIndicatorHalf: 2,
		WindowWidth:         660,
		WindowHeight:        300,
		CopiedFor:           1200 * time.Millisecond,
		IconSize:            32,
		IconPaths:           []string{"images/icon.png", "images/icon.svg"},
		AppID:               "com.example.ColorPicker",
		SampleQueueSize:     16,
		Profiling:           false,
		ProfilerAddress:     "http://localhost:4040",
	}
}

// Radius of the hue/saturation disc
func (opts *Options) Radius() int {
	return opts.WheelSize/2 - opts.Padding
}

// Parse builds the default options and applies the command line flags on top.
func Parse(args []string, output io.Writer) (*Options, error) {
	opts := new(Options).InitDefault()

	fs := flag.NewFlagSet("colorpicker", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&opts.Profiling, "profile", opts.Profiling, "Push profiles to a pyroscope server")
	fs.StringVar(&opts.ProfilerAddress, "profile-addr", opts.ProfilerAddress, "Pyroscope server address")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the geometry leaves a usable wheel and slider.
func (opts *Options) Validate() error {
	var errs []error
	if opts.WheelSize <= 0 {
		errs = append(errs, fmt.Errorf("wheel size must be positive, got %d", opts.WheelSize))
	}
	if opts.Padding < 0 {
		errs = append(errs, fmt.Errorf("padding must not be negative, got %d", opts.Padding))
	}
	if opts.WheelSize > 0 && opts.Radius() <= 0 {
		errs = append(errs, fmt.Errorf("padding %d leaves no wheel radius", opts.Padding))
	}
	if opts.SliderWidth <= 0 {
		errs = append(errs, fmt.Errorf("slider width must be positive, got %d", opts.SliderWidth))
	}
	if opts.CopiedFor <= 0 {
		errs = append(errs, fmt.Errorf("copied message duration must be positive, got %v", opts.CopiedFor))
	}
	if opts.SampleQueueSize <= 0 {
		errs = append(errs, fmt.Errorf("sample queue size must be positive, got %d", opts.SampleQueueSize))
	}
	return errors.Join(errs...)
}
