// Package transfer moves a single classified source file into the
// destination directory under its generated name.
//
// Images are resized and fall back to a raw copy when resizing fails; a
// failed fallback copy is reported on the result and the batch goes on.
// Videos are copied as-is, and a failed video copy is returned as a
// *VideoCopyError so the caller can abort the batch.
package transfer

import (
	"fmt"
	"path/filepath"

	"github.com/On-Jun9/ShutterStamp/internal/log"
	"github.com/On-Jun9/ShutterStamp/pkg/types"
)

type Resizer interface {
	Resize(src, dest string) error
}

type Copier interface {
	Copy(src, dest string) (int64, error)
}

type Verifier interface {
	Verify(src, dest string) error
}

type Handler struct {
	resizer  Resizer
	copier   Copier
	verifier Verifier
	logger   *log.Logger
}

// New returns a Handler. verifier may be nil.
func New(resizer Resizer, copier Copier, verifier Verifier, logger *log.Logger) *Handler {
	return &Handler{
		resizer:  resizer,
		copier:   copier,
		verifier: verifier,
		logger:   logger,
	}
}

// VideoCopyError is returned when a video cannot be copied.
type VideoCopyError struct {
	Name     string
	SrcDir   string
	DestDir  string
	SrcPath  string
	DestPath string
	Err      error
}

func (e *VideoCopyError) Error() string {
	return fmt.Sprintf("unable to copy video file %s to %s: %v", e.SrcPath, e.DestPath, e.Err)
}

func (e *VideoCopyError) Unwrap() error {
	return e.Err
}

// Diagnostics renders the paths involved, one per line.
func (e *VideoCopyError) Diagnostics() string {
	return fmt.Sprintf("\tfilename  <%s>\n\tsource fp <%s>\n\tdest   fp <%s>\n\tsfpn <%s>\n\tdfpn <%s>\n",
		e.Name, e.SrcDir, e.DestDir, e.SrcPath, e.DestPath)
}

// Image resizes srcDir/srcName into destDir/destName. When resizing fails the
// file is copied instead and the result reports Resized=false. The second
// return value is the number of bytes copied by the fallback.
func (h *Handler) Image(srcDir, destDir, srcName, destName string) (types.TransferResult, int64) {
	src := filepath.Join(srcDir, srcName)
	dest := filepath.Join(destDir, destName)

	result := types.TransferResult{
		Source:   src,
		DestPath: dest,
		Kind:     types.MediaKindImage,
	}

	err := h.resizer.Resize(src, dest)
	if err == nil {
		result.Action = types.TransferActionResized
		result.Resized = true
		return result, 0
	}

	h.logger.Debugf("image <%s> cannot be resized: %v", src, err)
	h.logger.Debugf("copy <%s> to <%s>", src, dest)

	n, err := h.copyVerified(src, dest)
	if err != nil {
		result.Action = types.TransferActionFailed
		result.Error = err.Error()
		return result, 0
	}

	result.Action = types.TransferActionCopied
	return result, n
}

// Video copies srcDir/srcName to destDir/destName.
func (h *Handler) Video(srcDir, destDir, srcName, destName string) (types.TransferResult, int64, error) {
	src := filepath.Join(srcDir, srcName)
	dest := filepath.Join(destDir, destName)
	h.logger.Debugf("copy <%s> to <%s>", src, dest)

	result := types.TransferResult{
		Source:   src,
		DestPath: dest,
		Kind:     types.MediaKindVideo,
		Action:   types.TransferActionCopied,
	}

	n, err := h.copyVerified(src, dest)
	if err != nil {
		result.Action = types.TransferActionFailed
		result.Error = err.Error()
		return result, 0, &VideoCopyError{
			Name:     srcName,
			SrcDir:   srcDir,
			DestDir:  destDir,
			SrcPath:  src,
			DestPath: dest,
			Err:      err,
		}
	}

	return result, n, nil
}

func (h *Handler) copyVerified(src, dest string) (int64, error) {
	n, err := h.copier.Copy(src, dest)
	if err != nil {
		return 0, err
	}
	if h.verifier != nil {
		if err := h.verifier.Verify(src, dest); err != nil {
			return n, fmt.Errorf("verify %s: %w", dest, err)
		}
	}
	return n, nil
}
