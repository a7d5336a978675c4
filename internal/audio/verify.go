package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/bogem/id3v2"
)

// ErrNoFrontCover is returned when a verified file carries no front
// cover picture frame.
var ErrNoFrontCover = errors.New("no front cover frame in output")

// VerifyFrontCover checks that path is a non-empty file whose ID3v2 tag
// contains an attached picture marked as the front cover.
//
// This runs against the encoder's temporary output before it is allowed
// to replace an original file, so an encoder that exits zero but writes
// garbage cannot destroy the input.
func VerifyFrontCover(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("verify output: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("verify output: %s is empty", path)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Attached picture"}})
	if err != nil {
		return fmt.Errorf("verify output: %w", err)
	}
	defer tag.Close()

	for _, frame := range tag.GetFrames(tag.CommonID("Attached picture")) {
		pic, ok := frame.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		if pic.PictureType == id3v2.PTFrontCover && len(pic.Picture) > 0 {
			return nil
		}
	}
	return fmt.Errorf("verify output %s: %w", path, ErrNoFrontCover)
}
