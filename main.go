package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/emberwm/ember/internal/backend"
	"github.com/emberwm/ember/internal/cfg"
	"github.com/emberwm/ember/internal/comp"
	"github.com/emberwm/ember/internal/log"
	"github.com/emberwm/ember/internal/ui"
	"github.com/emberwm/ember/internal/wm"
)

//go:embed .version
var version string

func main() {
	logPath, ok := os.LookupEnv("EMBER_LOG_PATH")
	if !ok {
		logPath = "/tmp/ember.log"
	}
	logger, err := log.NewLogger(log.INFO, logPath)
	if err != nil {
		fmt.Println("Failed to create logger:", err)
		os.Exit(1)
	}
	log.SetDefault(&logger)
	defer logger.Close()

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "--help", "-h", "help":
		printHelp()
	case "--version", "version":
		fmt.Println("ember", strings.TrimSpace(version))
	case "new":
		if len(os.Args) < 3 {
			printHelp()
			os.Exit(1)
		}
		if err := cfg.MakeProfile(os.Args[2]); err != nil {
			log.Error("Failed to make profile: %s", err)
			os.Exit(1)
		}
		log.Info("Created profile.")
	case "binds":
		if len(os.Args) < 3 {
			printHelp()
			os.Exit(1)
		}
		profile, err := cfg.GetProfile(os.Args[2])
		if err != nil {
			log.Error("Failed to get profile: %s", err)
			os.Exit(1)
		}
		if err := ui.Run(profile.Keybinds); err != nil {
			log.Error("Failed to run binds inspector: %s", err)
			os.Exit(1)
		}
	default:
		run(&logger, os.Args[1])
	}
}

// run loads the profile and drives the compositor core until it exits.
func run(logger *log.Logger, profileName string) {
	profile, err := cfg.GetProfile(profileName)
	if err != nil {
		log.Error("Failed to get profile: %s", err)
		os.Exit(1)
	}
	if level, ok := log.FromName(profile.LogLevel); ok {
		logger.SetLevel(level)
	}

	source, err := backend.New(&profile)
	if err != nil {
		log.Error("Failed to create input backend: %s", err)
		os.Exit(1)
	}
	defer source.Close()

	workspaces := wm.NewWorkspaces(1)
	for _, out := range profile.Outputs {
		geo := out.Geometry
		workspaces.AddOutput(wm.NewOutput(out.Name, wm.Rect{
			X: float64(geo.X),
			Y: float64(geo.Y),
			W: float64(geo.W),
			H: float64(geo.H),
		}))
	}
	// A nested source knows how big its host screen is; use that when the
	// profile does not configure any outputs.
	if len(workspaces.Outputs()) == 0 {
		if sized, ok := source.(interface{ ScreenSize() (int, int) }); ok {
			w, h := sized.ScreenSize()
			workspaces.AddOutput(wm.NewOutput("X11-1", wm.Rect{W: float64(w), H: float64(h)}))
		}
	}

	state := comp.New(&profile, comp.NewTraceSeat(), workspaces)
	log.Info("Ready.")
	if err := state.Run(source.Events(), source.Errors()); err != nil {
		log.Error("Failed to run: %s", err)
		os.Exit(1)
	}
	log.Info("Done.")
}

func printHelp() {
	fmt.Println(`
    ember - input compositor core
    USAGE:
        ember [PROFILE]         Run ember with the given profile.

    SUBCOMMANDS:
        ember new [PROFILE]     Create a new profile named PROFILE with
                                the default configuration.
        ember binds [PROFILE]   Inspect PROFILE's keybinds interactively.
        ember help              Print this message.
        ember version           Get the version of ember installed.
    `)
}
