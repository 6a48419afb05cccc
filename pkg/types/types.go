// Package types defines core data structures used across ShutterStamp modules.
package types

import (
	"time"
)

// SplitPath is a source path decomposed into directory and base filename.
type SplitPath struct {
	// Dir is the original directory component (may be empty).
	Dir string
	// Name is the original base filename, including extension.
	Name string
	// Ext is the substring after the last dot of Name, without the dot.
	// Empty when Name has no dot.
	Ext string
	// SafeDir is Dir with spaces replaced by hyphens.
	SafeDir string
	// SafeStem is Name without extension, with spaces and dots replaced by hyphens.
	SafeStem string
}

// SafeName returns the sanitized filename, keeping only the final extension dot.
func (s SplitPath) SafeName() string {
	if s.Ext == "" {
		return s.SafeStem
	}
	return s.SafeStem + "." + s.Ext
}

// MediaKind is the classification of a source file.
type MediaKind string

const (
	MediaKindImage   MediaKind = "image"
	MediaKindVideo   MediaKind = "video"
	MediaKindUnknown MediaKind = "unknown"
)

// MatchMode selects how extensions are matched against filenames.
type MatchMode string

const (
	// MatchSubstring matches when the extension token appears anywhere in the
	// lower-cased filename.
	MatchSubstring MatchMode = "substring"
	// MatchSuffix matches only the real extension.
	MatchSuffix MatchMode = "suffix"
)

// ConflictPolicy defines how to handle an existing file at the generated name.
type ConflictPolicy string

const (
	ConflictPolicyOverwrite ConflictPolicy = "overwrite"
	ConflictPolicySkip      ConflictPolicy = "skip"
	ConflictPolicyRename    ConflictPolicy = "rename"
)

// TransferAction represents the action taken for a file.
type TransferAction string

const (
	TransferActionResized     TransferAction = "resized"
	TransferActionCopied      TransferAction = "copied"
	TransferActionSkipped     TransferAction = "skipped"
	TransferActionRenamed     TransferAction = "renamed"
	TransferActionFailed      TransferAction = "failed"
	TransferActionMissing     TransferAction = "missing"
	TransferActionUnsupported TransferAction = "unsupported"
)

// TransferResult describes what happened to a single source file.
type TransferResult struct {
	Source   string
	DestPath string
	Kind     MediaKind
	Action   TransferAction
	// Resized is false when an image fell back to a raw copy.
	Resized bool
	Error   string
}

// RunSummary contains statistics for a completed run.
type RunSummary struct {
	TotalFiles   int
	Images       int
	Resized      int
	Fallback     int
	Videos       int
	Missing      int
	Unrecognized int
	Skipped      int
	Failed       int
	Stopped      bool
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	BytesCopied  int64
}

// MediaMetadata contains extracted metadata from a media file.
type MediaMetadata struct {
	// CaptureTime is the shooting time extracted from metadata.
	// Nil if extraction failed.
	CaptureTime *time.Time
	// Source indicates where the metadata came from (e.g., "EXIF:DateTimeOriginal").
	Source string
	// Error contains extraction error message if any.
	Error string
}
