// Package probe extracts coarse technical attributes from video files via ffprobe.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os/exec"
	"strconv"
	"time"
)

const defaultTimeout = 30 * time.Second

var errNoStreams = errors.New("no video streams")

// Result holds the probed stream attributes. Every field is independently
// optional: a nil field means the value could not be determined.
type Result struct {
	Duration *float64
	Width    *int
	Height   *int
	Codec    *string
}

// ffprobeOutput mirrors the JSON ffprobe emits for the selected stream.
type ffprobeOutput struct {
	Streams []struct {
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Prober runs ffprobe against video files.
type Prober struct {
	binary  string
	timeout time.Duration
	log     *slog.Logger
}

// New creates a Prober. binary defaults to "ffprobe" when empty.
func New(binary string, timeout time.Duration, log *slog.Logger) *Prober {
	if binary == "" {
		binary = "ffprobe"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Prober{binary: binary, timeout: timeout, log: log}
}

// Probe inspects the first video stream of the file at path.
// It never fails: any subprocess or parse problem is logged and yields an
// empty Result.
func (p *Prober) Probe(ctx context.Context, path string) Result {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,codec_name",
		"-show_format",
		"-of", "json",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		p.log.Warn("ffprobe failed", "path", path, "error", err)
		return Result{}
	}

	result, err := parseOutput(output)
	if err != nil {
		p.log.Warn("unusable ffprobe output", "path", path, "error", err)
		return Result{}
	}
	return result
}

func parseOutput(output []byte) (Result, error) {
	var parsed ffprobeOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return Result{}, err
	}
	if len(parsed.Streams) == 0 {
		return Result{}, errNoStreams
	}

	var r Result
	if d, err := strconv.ParseFloat(parsed.Format.Duration, 64); err == nil {
		r.Duration = &d
	}
	s := parsed.Streams[0]
	if s.Width > 0 {
		w := s.Width
		r.Width = &w
	}
	if s.Height > 0 {
		h := s.Height
		r.Height = &h
	}
	if s.CodecName != "" {
		c := s.CodecName
		r.Codec = &c
	}
	return r, nil
}
