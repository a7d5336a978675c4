package artwork

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"os"

	"golang.org/x/image/draw"

	"github.com/UnforeseenOcean/snippets-1/internal/config"
)

// Prepare returns the path of the artwork file to hand to the encoder.
//
// When settings request no preprocessing, the source file is used as is
// and cleanup is a no-op. Otherwise the image is resized to fit within
// settings.ArtworkMaxSize and/or re-encoded as JPEG with 90% quality,
// and written to a temporary file shared by every job of the run.
//
// The caller must invoke cleanup once the run is finished.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused)
//   - src: Artwork selected by Discover
//   - settings: Resize and conversion options
//
// Example:
//
//	path, cleanup, err := artwork.Prepare(ctx, src, settings)
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
func Prepare(ctx context.Context, src *Source, settings *config.Settings) (path string, cleanup func(), err error) {
	needResize := settings.ResizeArtwork &&
		(src.Width > settings.ArtworkMaxSize || src.Height > settings.ArtworkMaxSize)
	needConvert := settings.ConvertArtworkToJPG && src.MIME != "image/jpeg"

	if !needResize && !needConvert {
		return src.Path, func() {}, nil
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		return "", nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", nil, err
	}

	if needResize {
		img = scale(img, settings.ArtworkMaxSize, settings.ArtworkMaxSize)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", nil, err
	}

	tmp, err := os.CreateTemp("", "albumart-*.jpg")
	if err != nil {
		return "", nil, err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, err
	}

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

// scale fits img within maxWidth x maxHeight while preserving the
// aspect ratio. The Catmull-Rom algorithm is used for high-quality
// scaling.
func scale(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
