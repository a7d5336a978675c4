package artwork

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
)

// ErrNoArtwork is returned by Discover when none of the candidate file
// names exist in the directory.
var ErrNoArtwork = errors.New("no artwork file found")

// Source describes the artwork file selected for a run.
type Source struct {
	// Path is the artwork file on disk.
	Path string

	// Width and Height are the pixel dimensions read from the header.
	Width  int
	Height int

	// MIME is the detected image type: image/jpeg or image/png.
	MIME string
}

// Discover probes dir for an artwork file, trying names in order and
// selecting the first that exists as a regular file.
//
// The selected file must decode as a JPEG or PNG image. An existing
// candidate that cannot be decoded is an error rather than a reason to
// try the next name, so a corrupt cover file is reported instead of
// silently shadowed by a lower-priority one.
//
// Returns ErrNoArtwork if no candidate exists.
//
// Example:
//
//	src, err := artwork.Discover("/music/album", settings.ArtworkFileNames)
//	if errors.Is(err, artwork.ErrNoArtwork) {
//	    // nothing to embed
//	}
func Discover(dir string, names []string) (*Source, error) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return inspect(path)
	}
	return nil, ErrNoArtwork
}

// Load inspects an explicitly chosen artwork file, bypassing the probe.
//
// The same validation as Discover applies: the file must exist and
// decode as a JPEG or PNG image.
func Load(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("artwork %s is a directory", path)
	}
	return inspect(path)
}

// inspect reads the image header to confirm the file decodes and to
// record its dimensions and type.
func inspect(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode artwork %s: %w", path, err)
	}

	return &Source{
		Path:   path,
		Width:  cfg.Width,
		Height: cfg.Height,
		MIME:   "image/" + format,
	}, nil
}
