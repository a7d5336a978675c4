// Package artwork selects and prepares the cover image for a batch run.
//
// # Discovery
//
// Discover probes a directory for artwork using an ordered list of
// candidate file names and returns the first match:
//
//	src, err := artwork.Discover(dir, settings.ArtworkFileNames)
//	if errors.Is(err, artwork.ErrNoArtwork) {
//	    // no cover.* or folder.* file in dir
//	}
//
// The match is validated by decoding the image header, so the run fails
// before any audio file is touched if the artwork is corrupt. Load does
// the same for an explicitly chosen file, skipping the probe.
//
// # Preparation
//
// Prepare optionally resizes oversized artwork and converts PNG to JPEG,
// producing a temporary file that every job of the run shares:
//
//	path, cleanup, err := artwork.Prepare(ctx, src, settings)
//	defer cleanup()
//
// With resizing and conversion disabled (the defaults) the discovered
// file is embedded untouched.
package artwork
