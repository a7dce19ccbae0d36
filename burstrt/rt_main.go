package main

import (
	"flag"
	"runtime"
	"strings"
	"time"

	"github.com/gekko3d/fireworks"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	sprites := flag.String("sprites", "", "Comma separated sprite files (default: builtin sprites)")
	duration := flag.Duration("duration", 3*time.Second, "Burst lifetime")
	seed := flag.Uint64("seed", 0, "Random seed (0 = clock)")
	auto := flag.Duration("auto", 0, "Launch a burst every interval (0 = clicks only)")
	headless := flag.Bool("headless", false, "Run without a window, evaluating bursts on the CPU")
	frames := flag.Int("frames", 600, "Frames to run in headless mode")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	fw := fireworks.NewFireworksModule()
	fw.Duration = *duration
	fw.Seed = *seed
	fw.AutoInterval = *auto
	if *sprites != "" {
		fw.SpritePaths = strings.Split(*sprites, ",")
	}

	app := fireworks.NewApp().UseModules(
		fireworks.LoggingModule{Prefix: "fireworks", Debug: *debug},
	)
	if *headless {
		if fw.AutoInterval == 0 {
			fw.AutoInterval = 500 * time.Millisecond
		}
		app.UseModules(
			fireworks.TimeModule{FixedStep: time.Second / 60},
			fireworks.HeadlessModule{
				Width:       *width,
				Height:      *height,
				Frames:      *frames,
				ReportEvery: 60,
			},
		)
	} else {
		app.UseModules(
			fireworks.TimeModule{},
			fireworks.NewPlatformWindow(*width, *height, "Fireworks"),
			fireworks.InputModule{},
			fireworks.ClientModule{ReportFPS: *debug},
		)
	}
	app.UseModules(fw)
	app.Run()
}
