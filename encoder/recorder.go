// Package encoder records rendered frames to a video file by piping raw
// RGBA pixels into an ffmpeg process.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/richinsley/pianino/options"
	"github.com/richinsley/pianino/sgl"
)

// queued frames before Capture starts dropping
const frameQueue = 4

var ErrNotStarted = errors.New("recorder not started")

// Recorder reads back the default framebuffer after each redraw and streams
// it to ffmpeg. All methods must be called from the goroutine owning the
// GL context.
type Recorder struct {
	opts options.Record

	width, height int
	captured      int
	dropped       int

	frames chan []byte
	pw     *io.PipeWriter
	errc   chan error
	wg     sync.WaitGroup

	// run consumes the raw stream. It is replaced in tests.
	run func(in io.Reader, width, height int) error
}

// New returns a recorder for opts. Nothing is started until Start.
func New(opts options.Record) *Recorder {
	r := &Recorder{opts: opts}
	r.run = r.runFFmpeg
	return r
}

// Enabled reports whether an output file is configured.
func (r *Recorder) Enabled() bool { return r.opts.Output != "" }

// Started reports whether Start succeeded and Close was not called yet.
func (r *Recorder) Started() bool { return r.frames != nil }

// Done reports whether the configured frame limit was reached.
func (r *Recorder) Done() bool {
	return r.opts.Frames > 0 && r.captured >= r.opts.Frames
}

// Captured returns the number of frames queued so far.
func (r *Recorder) Captured() int { return r.captured }

// Dropped returns the number of frames discarded because of a size mismatch
// or a full queue.
func (r *Recorder) Dropped() int { return r.dropped }

func (r *Recorder) buildArgs(width, height int) (in, out ffmpeg.KwArgs) {
	in = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", width, height),
		"r":       strconv.Itoa(r.opts.FPS),
	}
	// GL rows start at the bottom.
	out = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     r.opts.Codec,
		"pix_fmt": "yuv420p",
	}
	return in, out
}

func (r *Recorder) runFFmpeg(in io.Reader, width, height int) error {
	inArgs, outArgs := r.buildArgs(width, height)
	cmd := ffmpeg.Input("pipe:", inArgs).
		Output(r.opts.Output, outArgs).
		OverWriteOutput().WithInput(in).ErrorToStdOut()
	if r.opts.FFmpegPath != "" {
		cmd = cmd.SetFfmpegPath(r.opts.FFmpegPath)
	}
	return cmd.Run()
}

// Start launches ffmpeg for frames of width x height pixels.
func (r *Recorder) Start(width, height int) error {
	if !r.Enabled() {
		return errors.New("no output file configured")
	}
	if r.Started() {
		return errors.New("recorder already started")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	pr, pw := io.Pipe()
	r.width, r.height = width, height
	r.pw = pw
	frames := make(chan []byte, frameQueue)
	r.frames = frames
	r.errc = make(chan error, 1)

	go func() {
		err := r.run(pr, width, height)
		// Unblock the writer if ffmpeg exits early.
		pr.CloseWithError(io.ErrClosedPipe)
		r.errc <- err
	}()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for frame := range frames {
			if _, err := pw.Write(frame); err != nil {
				sgl.Logger().Error("failed to write frame to ffmpeg", "err", err)
				// Drain so Capture never blocks.
				for range frames {
				}
				return
			}
		}
	}()

	sgl.Logger().Info("recording started", "output", r.opts.Output, "size", fmt.Sprintf("%dx%d", width, height), "fps", r.opts.FPS)
	return nil
}

// Capture reads back a width x height framebuffer and queues it. Frames of
// a size other than the one passed to Start are dropped.
func (r *Recorder) Capture(gl sgl.Context, width, height int) error {
	if !r.Started() {
		return ErrNotStarted
	}
	if r.Done() {
		return nil
	}
	if width != r.width || height != r.height {
		r.dropped++
		sgl.Logger().Debug("frame size changed, dropping frame", "want", fmt.Sprintf("%dx%d", r.width, r.height), "got", fmt.Sprintf("%dx%d", width, height))
		return nil
	}
	frame := make([]byte, width*height*4)
	gl.ReadPixels(frame, 0, 0, width, height, sgl.RGBA, sgl.UNSIGNED_BYTE)
	select {
	case r.frames <- frame:
		r.captured++
	default:
		r.dropped++
		sgl.Logger().Warn("encoder queue full, dropping frame")
	}
	return nil
}

// Close flushes queued frames and waits for ffmpeg to exit.
func (r *Recorder) Close() error {
	if !r.Started() {
		return nil
	}
	close(r.frames)
	r.wg.Wait()
	r.pw.Close()
	err := <-r.errc
	r.frames = nil
	sgl.Logger().Info("recording finished", "frames", r.captured, "dropped", r.dropped)
	if err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}
