package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/UnforeseenOcean/snippets-1/internal/model"
)

// ErrEncoderNotFound is returned when no usable encoder binary exists.
var ErrEncoderNotFound = errors.New("no encoder found (install ffmpeg or avconv)")

// encoderNames lists the binaries probed on PATH, in order of preference.
var encoderNames = []string{"ffmpeg", "avconv"}

// ResolveEncoder locates the encoder binary to use for the run.
//
// If explicit is non-empty it names the binary directly, either as a
// path or as a name to search on PATH. Otherwise the well-known encoder
// names are probed in order.
//
// Returns ErrEncoderNotFound if nothing usable is located.
//
// Example:
//
//	encoder, err := audio.ResolveEncoder(settings.EncoderPath)
//	if err != nil {
//	    // setup failure, nothing has been touched
//	}
func ResolveEncoder(explicit string) (string, error) {
	if explicit != "" {
		path, err := exec.LookPath(explicit)
		if err != nil {
			return "", fmt.Errorf("encoder %q: %w", explicit, err)
		}
		return path, nil
	}

	for _, name := range encoderNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrEncoderNotFound
}

// Embedder rewrites audio files with an attached front cover by running
// an external encoder.
//
// The encoder copies the audio stream without re-encoding and muxes the
// artwork in as an attached picture, so a run is fast and lossless. The
// rewritten file only replaces the original after the output verifies.
//
// Example:
//
//	encoder, _ := audio.ResolveEncoder("")
//	embedder := audio.NewEmbedder(encoder)
//	err := embedder.Apply(ctx, model.Job{AudioPath: "01.mp3", ArtworkPath: "cover.jpg"})
type Embedder struct {
	encoderPath string
}

// NewEmbedder creates an Embedder that invokes the given encoder binary.
func NewEmbedder(encoderPath string) *Embedder {
	return &Embedder{encoderPath: encoderPath}
}

// Apply embeds the job's artwork into its audio file.
//
// The encoder writes to a temporary file next to the original. The
// original is replaced, via rename, only after the output exists, is
// non-empty and carries a front cover frame. On any failure the
// temporary file is removed and the original is left untouched.
func (e *Embedder) Apply(ctx context.Context, job model.Job) error {
	tmpPath := job.AudioPath + ".tmp"

	cmd := exec.CommandContext(ctx, e.encoderPath, buildArgs(job.AudioPath, job.ArtworkPath, tmpPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(tmpPath)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("encoder: %w: %s", err, msg)
		}
		return fmt.Errorf("encoder: %w", err)
	}

	if err := VerifyFrontCover(tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, job.AudioPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// buildArgs assembles the encoder invocation: both inputs mapped through
// unchanged, streams copied rather than re-encoded, and the image stream
// labelled as the front cover of an ID3v2.3 tag. The output container is
// forced to MP3 since the temporary file's .tmp suffix says nothing
// about its format.
func buildArgs(audioPath, artworkPath, outPath string) []string {
	return []string{
		"-i", audioPath,
		"-i", artworkPath,
		"-map", "0:0",
		"-map", "1:0",
		"-c", "copy",
		"-id3v2_version", "3",
		"-metadata:s:v", "title=Album cover",
		"-metadata:s:v", "comment=Cover (front)",
		"-f", "mp3",
		"-loglevel", "error",
		"-y",
		outPath,
	}
}
