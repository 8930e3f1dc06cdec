// Package app runs a demo application: command line and config parsing,
// logging, the glfw window and the platform event loop.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/richinsley/pianino/glfwcontext"
	"github.com/richinsley/pianino/options"
	"github.com/richinsley/pianino/platform"
	"github.com/richinsley/pianino/sgl"
)

// Config describes an application.
type Config struct {
	Name  string
	Title string // default window title
	Usage string
	// Overlay enables the text overlay of the scene.
	Overlay bool
	// NewHandler wraps the shared Base; nil runs Base alone.
	NewHandler func(b *Base) platform.EventHandler
}

// Main runs the application and exits the process on failure.
func Main(cfg Config) {
	a := &cli.App{
		Name:  cfg.Name,
		Usage: cfg.Usage,
		Flags: options.Flags(),
		Action: func(ctx *cli.Context) error {
			return run(ctx, cfg)
		},
	}
	if err := a.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context, cfg Config) error {
	opts, err := options.FromCLI(ctx, cfg.Title)
	if err != nil {
		return err
	}
	level, _ := opts.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	sgl.SetLogger(logger)

	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	surface, err := glfwcontext.New(opts)
	if err != nil {
		return err
	}
	defer surface.Close()

	base := NewBase(opts, cfg.Overlay)
	var handler platform.EventHandler = base
	if cfg.NewHandler != nil {
		handler = cfg.NewHandler(base)
	}
	p := platform.New(surface, handler)
	base.exit = p.Exit
	return p.Run()
}
