// Package classify decides whether a filename denotes a still image or a video.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/On-Jun9/ShutterStamp/pkg/types"
)

const (
	ImageJPG = "jpg"
	VideoM4V = "m4v"
)

type Classifier struct {
	imageExt []string
	videoExt []string
	mode     types.MatchMode
}

// New returns a classifier for the given extension lists. Empty lists fall
// back to jpg and m4v.
func New(imageExt, videoExt []string, mode types.MatchMode) *Classifier {
	if len(imageExt) == 0 {
		imageExt = []string{ImageJPG}
	}
	if len(videoExt) == 0 {
		videoExt = []string{VideoM4V}
	}
	if mode == "" {
		mode = types.MatchSubstring
	}
	return &Classifier{
		imageExt: normalize(imageExt),
		videoExt: normalize(videoExt),
		mode:     mode,
	}
}

// Default matches jpg images and m4v videos by substring.
func Default() *Classifier {
	return New(nil, nil, types.MatchSubstring)
}

// IsImage reports whether name matches one of the image extensions.
//
// In substring mode the token may appear anywhere in the lower-cased name,
// so "jpgfile.png" counts as an image.
func (c *Classifier) IsImage(name string) bool {
	_, ok := c.match(name, c.imageExt)
	return ok
}

// IsVideo reports whether name matches one of the video extensions.
func (c *Classifier) IsVideo(name string) bool {
	_, ok := c.match(name, c.videoExt)
	return ok
}

// Classify returns the media kind of name and the extension token that
// matched it. Images are checked before videos.
func (c *Classifier) Classify(name string) (types.MediaKind, string) {
	if ext, ok := c.match(name, c.imageExt); ok {
		return types.MediaKindImage, ext
	}
	if ext, ok := c.match(name, c.videoExt); ok {
		return types.MediaKindVideo, ext
	}
	return types.MediaKindUnknown, ""
}

func (c *Classifier) match(name string, exts []string) (string, bool) {
	lower := strings.ToLower(name)
	suffix := strings.TrimPrefix(filepath.Ext(lower), ".")

	for _, ext := range exts {
		switch c.mode {
		case types.MatchSuffix:
			if suffix == ext {
				return ext, true
			}
		default:
			if strings.Contains(lower, ext) {
				return ext, true
			}
		}
	}
	return "", false
}

func normalize(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}
