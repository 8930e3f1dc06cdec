package options

import (
	"github.com/urfave/cli/v2"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	TitleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "window title",
	}
	WidthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width in pixels",
	}
	HeightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height in pixels",
	}
	IconFlag = &cli.StringFlag{
		Name:  "icon",
		Usage: "window icon image",
	}
	VSyncFlag = &cli.BoolFlag{
		Name:  "vsync",
		Usage: "synchronize buffer swaps with the display",
	}
	SamplesFlag = &cli.IntFlag{
		Name:  "samples",
		Usage: "multisample count, 0 disables",
	}
	SRGBFlag = &cli.BoolFlag{
		Name:  "srgb",
		Usage: "request an sRGB capable framebuffer",
	}
	TranslateFlag = &cli.BoolFlag{
		Name:  "translate",
		Usage: "translate shaders with ANGLE before compiling",
	}
	ShaderDirFlag = &cli.StringFlag{
		Name:  "shaders",
		Usage: "directory with triangle.vert and triangle.frag, reloaded on change",
	}
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level: debug, info, warn or error",
	}
	RecordFlag = &cli.StringFlag{
		Name:  "record",
		Usage: "record frames to this video file",
	}
	FPSFlag = &cli.IntFlag{
		Name:  "fps",
		Usage: "recording frame rate",
	}
	FramesFlag = &cli.IntFlag{
		Name:  "frames",
		Usage: "stop after recording this many frames",
	}
	CodecFlag = &cli.StringFlag{
		Name:  "codec",
		Usage: "ffmpeg video codec",
	}
	FFmpegFlag = &cli.StringFlag{
		Name:  "ffmpeg",
		Usage: "path to the ffmpeg binary",
	}
)

// Flags returns the flags understood by FromCLI.
func Flags() []cli.Flag {
	return []cli.Flag{
		ConfigFlag,
		TitleFlag,
		WidthFlag,
		HeightFlag,
		IconFlag,
		VSyncFlag,
		SamplesFlag,
		SRGBFlag,
		TranslateFlag,
		ShaderDirFlag,
		VerbosityFlag,
		RecordFlag,
		FPSFlag,
		FramesFlag,
		CodecFlag,
		FFmpegFlag,
	}
}

// FromCLI builds validated options from defaults, the --config file and
// the flags set on the command line.
func FromCLI(ctx *cli.Context, title string) (*Options, error) {
	o := Default(title)
	if ctx.IsSet(ConfigFlag.Name) {
		if err := o.Load(ctx.String(ConfigFlag.Name)); err != nil {
			return nil, err
		}
	}
	setString(ctx, TitleFlag, &o.Title)
	setInt(ctx, WidthFlag, &o.Width)
	setInt(ctx, HeightFlag, &o.Height)
	setString(ctx, IconFlag, &o.Icon)
	setBool(ctx, VSyncFlag, &o.VSync)
	setInt(ctx, SamplesFlag, &o.Samples)
	setBool(ctx, SRGBFlag, &o.SRGB)
	setBool(ctx, TranslateFlag, &o.Translate)
	setString(ctx, ShaderDirFlag, &o.ShaderDir)
	setString(ctx, VerbosityFlag, &o.Verbosity)
	setString(ctx, RecordFlag, &o.Record.Output)
	setInt(ctx, FPSFlag, &o.Record.FPS)
	setInt(ctx, FramesFlag, &o.Record.Frames)
	setString(ctx, CodecFlag, &o.Record.Codec)
	setString(ctx, FFmpegFlag, &o.Record.FFmpegPath)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func setString(ctx *cli.Context, f *cli.StringFlag, dst *string) {
	if ctx.IsSet(f.Name) {
		*dst = ctx.String(f.Name)
	}
}

func setInt(ctx *cli.Context, f *cli.IntFlag, dst *int) {
	if ctx.IsSet(f.Name) {
		*dst = ctx.Int(f.Name)
	}
}

func setBool(ctx *cli.Context, f *cli.BoolFlag, dst *bool) {
	if ctx.IsSet(f.Name) {
		*dst = ctx.Bool(f.Name)
	}
}
