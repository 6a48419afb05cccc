package policy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/On-Jun9/ShutterStamp/pkg/types"
)

// ConflictResolver decides what to do when a generated destination name
// already exists. The default policy overwrites.
type ConflictResolver struct {
	policy types.ConflictPolicy
}

func NewConflictResolver(policy types.ConflictPolicy) *ConflictResolver {
	if policy == "" {
		policy = types.ConflictPolicyOverwrite
	}
	return &ConflictResolver{policy: policy}
}

type Resolution struct {
	DestPath string
	Skip     bool
	Renamed  bool
}

func (c *ConflictResolver) Resolve(destPath string) Resolution {
	if _, err := os.Stat(destPath); os.IsNotExist(err) {
		return Resolution{DestPath: destPath}
	}

	switch c.policy {
	case types.ConflictPolicySkip:
		return Resolution{DestPath: destPath, Skip: true}

	case types.ConflictPolicyRename:
		return Resolution{DestPath: c.generateUniqueName(destPath), Renamed: true}

	default:
		return Resolution{DestPath: destPath}
	}
}

func (c *ConflictResolver) generateUniqueName(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	for i := 1; i < 10000; i++ {
		newName := fmt.Sprintf("%s_%d%s", base, i, ext)
		newPath := filepath.Join(dir, newName)
		if _, err := os.Stat(newPath); os.IsNotExist(err) {
			return newPath
		}
	}

	return path
}
