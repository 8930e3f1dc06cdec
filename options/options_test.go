package options

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pianino.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	o := Default("GLES Demo")
	require.NoError(t, o.Validate())
	assert.Equal(t, "GLES Demo", o.Title)
	assert.Equal(t, 3, o.GLESMajor)
	assert.True(t, o.VSync)
	l, err := o.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
title = "Pianino"
width = 1280
srgb = true
verbosity = "debug"

[record]
output = "out.mp4"
fps = 30
`)
	o := Default("x")
	require.NoError(t, o.Load(path))
	assert.Equal(t, "Pianino", o.Title)
	assert.Equal(t, 1280, o.Width)
	assert.Equal(t, 600, o.Height, "keys absent from the file keep their defaults")
	assert.True(t, o.SRGB)
	assert.Equal(t, "out.mp4", o.Record.Output)
	assert.Equal(t, 30, o.Record.FPS)
	assert.Equal(t, "libx264", o.Record.Codec)
	require.NoError(t, o.Validate())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "widht = 3\n")
	err := Default("x").Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	err := Default("x").Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	o := Default("saved")
	o.ShaderDir = "shaders"
	require.NoError(t, o.Save(path))

	back := Default("other")
	require.NoError(t, back.Load(path))
	assert.Equal(t, o, back)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Options){
		"zero width":    func(o *Options) { o.Width = 0 },
		"gles 4":        func(o *Options) { o.GLESMajor = 4 },
		"negative msaa": func(o *Options) { o.Samples = -1 },
		"record no fps": func(o *Options) { o.Record.Output = "a.mp4"; o.Record.FPS = 0 },
		"bad verbosity": func(o *Options) { o.Verbosity = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			o := Default("x")
			mutate(o)
			assert.Error(t, o.Validate())
		})
	}
}

func TestFromCLI(t *testing.T) {
	path := writeConfig(t, "width = 1000\nheight = 700\n")
	var got *Options
	app := &cli.App{
		Flags: Flags(),
		Action: func(ctx *cli.Context) error {
			var err error
			got, err = FromCLI(ctx, "Pianino")
			return err
		},
	}
	require.NoError(t, app.Run([]string{"pianino", "--config", path, "--height", "720", "--translate"}))
	require.NotNil(t, got)
	assert.Equal(t, "Pianino", got.Title)
	assert.Equal(t, 1000, got.Width)
	assert.Equal(t, 720, got.Height)
	assert.True(t, got.Translate)
	assert.True(t, got.VSync)
}

func TestFromCLIInvalid(t *testing.T) {
	app := &cli.App{
		Flags:  Flags(),
		Action: func(ctx *cli.Context) error { _, err := FromCLI(ctx, "x"); return err },
	}
	assert.Error(t, app.Run([]string{"x", "--width", "-5"}))
}
