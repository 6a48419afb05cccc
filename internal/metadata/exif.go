package metadata

import (
	"os"
	"time"

	"github.com/On-Jun9/ShutterStamp/pkg/types"
	"github.com/rwcarlsen/goexif/exif"
)

type EXIFExtractor struct{}

func NewEXIFExtractor() *EXIFExtractor {
	return &EXIFExtractor{}
}

// Extract reads the capture time of the image at path. A failed lookup is
// reported through MediaMetadata.Error, never as a Go error.
func (e *EXIFExtractor) Extract(path string) types.MediaMetadata {
	f, err := os.Open(path)
	if err != nil {
		return types.MediaMetadata{Error: err.Error()}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return types.MediaMetadata{Error: "no EXIF data: " + err.Error()}
	}

	if t, err := x.DateTime(); err == nil {
		return types.MediaMetadata{
			CaptureTime: &t,
			Source:      "EXIF:DateTimeOriginal",
		}
	}

	if tag, err := x.Get(exif.DateTimeDigitized); err == nil {
		if strVal, err := tag.StringVal(); err == nil {
			if t, err := time.ParseInLocation("2006:01:02 15:04:05", strVal, time.Local); err == nil {
				return types.MediaMetadata{
					CaptureTime: &t,
					Source:      "EXIF:DateTimeDigitized",
				}
			}
		}
	}

	return types.MediaMetadata{Error: "no capture time found in EXIF"}
}
