package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eggrid/eggrid/pkg/egg"
	"github.com/eggrid/eggrid/pkg/termgrid"
)

const defaultOptionsFile = "eggrid.yaml"

func main() {
	// Subcommands are dispatched before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			initCmd := flag.NewFlagSet("init", flag.ExitOnError)
			initCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: eggrid init [flags]\n\nRun the interactive wizard and write an engine options file.\n\nFlags:\n")
				initCmd.PrintDefaults()
			}
			out := initCmd.String("out", defaultOptionsFile, "path to write the options file")
			force := initCmd.Bool("force", false, "overwrite an existing options file")
			_ = initCmd.Parse(os.Args[2:])

			if err := runInit(*out, *force); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eggrid [flags]\n       eggrid <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init    Run the interactive wizard and write an engine options file\n")
	}

	optionsPath := flag.String("options", "", "path to engine options YAML (default: eggrid.yaml when present)")
	envFile := flag.String("env", ".env", "path to a .env file, skipped when absent")
	debugLog := flag.String("debug-log", "", "write engine debug logs to this file")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*optionsPath, *debugLog); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runInit(outPath string, force bool) error {
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", outPath)
		}
	}

	data, err := runWizard()
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", outPath)

	return nil
}

func run(optionsPath, debugLog string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	prefs, err := loadPrefs()
	if err != nil {
		return err
	}

	// Options resolution: explicit flag, then eggrid.yaml when present.
	if optionsPath == "" {
		if _, statErr := os.Stat(defaultOptionsFile); statErr == nil {
			optionsPath = defaultOptionsFile
		}
	}

	var opts egg.Options
	if optionsPath != "" {
		opts, err = egg.LoadOptions(optionsPath)
		if err != nil {
			return err
		}
	}
	applyTerminalScale(&opts)

	if err := opts.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(debugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := termgrid.NewBus()
	grid := termgrid.New(termgrid.Config{
		ID:           "eggrid",
		Columns:      prefs.Grid.Columns,
		Rows:         prefs.Grid.Rows,
		CellWidth:    prefs.Grid.CellWidth,
		CellHeight:   prefs.Grid.CellHeight,
		ViewportRows: prefs.Grid.ViewportRows,
		Logger:       logger,
		Bus:          bus,
	})
	seedItems(grid, prefs.Items)

	opts.Layout = grid
	opts.Logger = logger

	core, err := egg.Init(grid, opts)
	if err != nil {
		return err
	}

	model := newAppModel(ctx, grid, core, bus, opts, prefs)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Send the program reference so the model can start the bridge goroutine.
	go func() {
		p.Send(programReadyMsg{program: p})
	}()

	final, err := p.Run()

	// Cycling the layout algorithm replaces the core, so tear down whichever
	// one the model ended up holding.
	if app, ok := final.(appModel); ok && app.core != nil {
		app.core.Destroy()
	}

	return err
}

// applyTerminalScale fills unset gesture thresholds with values sized for
// character cells. The engine defaults assume pixels and would swallow a
// terminal cell whole.
func applyTerminalScale(opts *egg.Options) {
	if opts.Pointer.DragDeadZone == 0 {
		opts.Pointer.DragDeadZone = 1
	}
	if opts.Resize.GripSize == 0 {
		opts.Resize.GripSize = 2
	}
	if opts.Camera.Edge == 0 {
		opts.Camera.Edge = 2
	}
	if opts.Camera.Step == 0 {
		opts.Camera.Step = 1
	}
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return logger, func() { _ = f.Close() }, nil
}
