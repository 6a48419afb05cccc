package copier

import (
	"io"
	"os"
)

// Copier copies a single file. The destination directory must already exist.
type Copier struct {
	dryRun bool
}

func New(dryRun bool) *Copier {
	return &Copier{dryRun: dryRun}
}

// Copy writes src to dest through a ".part" file and renames it into place,
// returning the number of bytes written.
func (c *Copier) Copy(src, dest string) (int64, error) {
	if c.dryRun {
		info, err := os.Stat(src)
		if err != nil {
			return 0, err
		}
		return info.Size(), nil
	}

	partPath := dest + ".part"

	n, err := c.atomicCopy(src, partPath, dest)
	if err != nil {
		os.Remove(partPath)
		return 0, err
	}
	return n, nil
}

func (c *Copier) atomicCopy(src, partDest, finalDest string) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(partDest)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dstFile, srcFile)
	if closeErr := dstFile.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, err
	}

	// Preserve modification time
	info, err := srcFile.Stat()
	if err == nil {
		os.Chtimes(partDest, info.ModTime(), info.ModTime())
	}

	return n, os.Rename(partDest, finalDest)
}
