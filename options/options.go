// Package options holds the configuration shared by the demo applications.
// Values come from defaults, then an optional TOML file, then command line
// flags that were set explicitly.
package options

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Options struct {
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Icon        string `toml:"icon"` // path to a PNG/JPEG window icon
	VSync       bool   `toml:"vsync"`
	Samples     int    `toml:"samples"`
	SRGB        bool   `toml:"srgb"`
	DepthBits   int    `toml:"depth_bits"`
	StencilBits int    `toml:"stencil_bits"`
	GLESMajor   int    `toml:"gles_major"`
	GLESMinor   int    `toml:"gles_minor"`

	// Translate runs shaders through ANGLE before compiling them.
	Translate bool `toml:"translate"`
	// ShaderDir, when set, is watched for triangle.vert/triangle.frag.
	ShaderDir string `toml:"shader_dir"`
	Verbosity string `toml:"verbosity"`

	Record Record `toml:"record"`
}

// Record configures frame capture to a video file.
type Record struct {
	Output     string `toml:"output"` // empty disables recording
	FPS        int    `toml:"fps"`
	Frames     int    `toml:"frames"` // stop after this many frames, 0 for no limit
	Codec      string `toml:"codec"`
	FFmpegPath string `toml:"ffmpeg"`
}

// Default returns the built-in configuration for an application titled title.
func Default(title string) *Options {
	return &Options{
		Title:       title,
		Width:       800,
		Height:      600,
		VSync:       true,
		StencilBits: 8,
		GLESMajor:   3,
		GLESMinor:   0,
		Verbosity:   "info",
		Record: Record{
			FPS:   60,
			Codec: "libx264",
		},
	}
}

// Load overlays the TOML file at path onto o. Unknown keys are an error.
func (o *Options) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(o); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("config %s: %s", path, strict.String())
		}
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Save writes o as TOML to path.
func (o *Options) Save(path string) error {
	data, err := toml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first invalid setting.
func (o *Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	case o.Samples < 0:
		return fmt.Errorf("invalid sample count %d", o.Samples)
	case o.GLESMajor < 2 || o.GLESMajor > 3:
		return fmt.Errorf("unsupported GLES version %d.%d", o.GLESMajor, o.GLESMinor)
	case o.Record.Output != "" && o.Record.FPS <= 0:
		return fmt.Errorf("invalid record fps %d", o.Record.FPS)
	case o.Record.Frames < 0:
		return fmt.Errorf("invalid record frame count %d", o.Record.Frames)
	}
	if _, err := o.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses Verbosity.
func (o *Options) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(o.Verbosity)); err != nil {
		return l, fmt.Errorf("invalid verbosity %q", o.Verbosity)
	}
	return l, nil
}
