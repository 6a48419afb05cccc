package verify

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMismatch is wrapped by every size or hash mismatch.
var ErrMismatch = errors.New("copy mismatch")

// Verifier checks that a raw copy matches its source. Resized images are
// never verified since their bytes differ by construction.
type Verifier struct {
	enabled    bool
	hashVerify bool
}

// New returns a Verifier. hashVerify implies the size check.
func New(sizeCheck, hashVerify bool) *Verifier {
	return &Verifier{enabled: sizeCheck || hashVerify, hashVerify: hashVerify}
}

func (v *Verifier) Enabled() bool {
	return v.enabled
}

func (v *Verifier) Verify(srcPath, destPath string) error {
	if !v.enabled {
		return nil
	}

	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("source file not found: %w", err)
	}
	destInfo, err := os.Stat(destPath)
	if err != nil {
		return fmt.Errorf("destination file not found: %w", err)
	}

	if destInfo.Size() != srcInfo.Size() {
		return fmt.Errorf("%w: size expected %d, got %d", ErrMismatch, srcInfo.Size(), destInfo.Size())
	}

	if !v.hashVerify {
		return nil
	}

	srcHash, err := hashFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to hash source: %w", err)
	}

	destHash, err := hashFile(destPath)
	if err != nil {
		return fmt.Errorf("failed to hash destination: %w", err)
	}

	if srcHash != destHash {
		return fmt.Errorf("%w: hash src=%s, dest=%s", ErrMismatch, srcHash, destHash)
	}

	return nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
