package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/port"
)

const (
	// thumbnailOffset is how far into the video the still is taken, in seconds.
	thumbnailOffset = "5"
	stderrTailBytes = 2048
	waitDelay       = 2 * time.Second
)

type Options struct {
	FFmpegPath  string
	FFprobePath string
	// Timeout bounds every single invocation. Zero means no bound.
	Timeout time.Duration
}

type Converter struct {
	ffmpeg  string
	ffprobe string
	timeout time.Duration
}

func NewConverter(opts Options) *Converter {
	c := &Converter{
		ffmpeg:  opts.FFmpegPath,
		ffprobe: opts.FFprobePath,
		timeout: opts.Timeout,
	}
	if c.ffmpeg == "" {
		c.ffmpeg = "ffmpeg"
	}
	if c.ffprobe == "" {
		c.ffprobe = "ffprobe"
	}
	return c
}

// Resize scales source to exactly width x height, copying the audio track.
// An existing target is overwritten.
func (c *Converter) Resize(ctx context.Context, source, target string, width, height int) error {
	if err := validateIO(source, target); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize to %dx%d: %w", width, height, domain.ErrInvalidDimensions)
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", source,
		"-vf", fmt.Sprintf("scale=%d:%d", width, height),
		"-c:a", "copy",
		"-threads", "2",
		"-y", target,
	}
	_, err := c.run(ctx, c.ffmpeg, args...)
	return err
}

func (c *Converter) ExtractAudio(ctx context.Context, source, target string) error {
	if err := validateIO(source, target); err != nil {
		return err
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", source,
		"-vn",
		"-c:a", "copy",
		"-y", target,
	}
	_, err := c.run(ctx, c.ffmpeg, args...)
	return err
}

func (c *Converter) MakeThumbnail(ctx context.Context, source, target string) error {
	if err := validateIO(source, target); err != nil {
		return err
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", source,
		"-ss", thumbnailOffset,
		"-vframes", "1",
		"-y", target,
	}
	_, err := c.run(ctx, c.ffmpeg, args...)
	return err
}

// GetDimensions reads the width and height of the first video stream.
func (c *Converter) GetDimensions(ctx context.Context, source string) (domain.Dimensions, error) {
	if err := validatePath(source); err != nil {
		return domain.Dimensions{}, fmt.Errorf("invalid input path: %w", err)
	}

	args := []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=p=0",
		source,
	}
	out, err := c.run(ctx, c.ffprobe, args...)
	if err != nil {
		return domain.Dimensions{}, err
	}
	return parseDimensions(out)
}

// parseDimensions accepts ffprobe's csv output, e.g. "1920,1080\n".
func parseDimensions(out []byte) (domain.Dimensions, error) {
	compact := strings.Join(strings.Fields(string(out)), "")
	fields := strings.Split(compact, ",")
	if len(fields) < 2 {
		return domain.Dimensions{}, fmt.Errorf("%w: %q", ErrUnparsableOutput, compact)
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: %q", ErrUnparsableOutput, compact)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: %q", ErrUnparsableOutput, compact)
	}

	d := domain.Dimensions{Width: width, Height: height}
	if !d.Valid() {
		return domain.Dimensions{}, fmt.Errorf("%w: %q", ErrUnparsableOutput, compact)
	}
	return d, nil
}

func (c *Converter) run(ctx context.Context, tool string, args ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	name := filepath.Base(tool)
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	stderr := &tailBuffer{limit: stderrTailBytes}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, &StartError{Tool: name, Err: err}
	}

	if err := cmd.Wait(); err != nil {
		exitErr := &ExitError{Tool: name, Code: -1, State: err.Error(), Stderr: stderr.String(), Err: err}
		if ps := cmd.ProcessState; ps != nil {
			exitErr.Code = ps.ExitCode()
			exitErr.State = ps.String()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			exitErr.Err = ctxErr
		}
		return nil, exitErr
	}

	return stdout.Bytes(), nil
}

func validateIO(input, output string) error {
	if err := validatePath(input); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(output); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	return nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	buf   []byte
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if len(t.buf) > t.limit {
		t.buf = t.buf[len(t.buf)-t.limit:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return strings.TrimSpace(string(t.buf))
}

var _ port.Transcoder = (*Converter)(nil)
