package config

import (
	"os"

	"github.com/On-Jun9/ShutterStamp/pkg/types"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Source          string               `yaml:"source" json:"source"`
	Dest            string               `yaml:"dest" json:"dest"`
	JPGOnly         bool                 `yaml:"jpg_only" json:"jpg_only"`
	Debug           bool                 `yaml:"debug" json:"debug"`
	DryRun          bool                 `yaml:"dry_run" json:"dry_run"`
	ImageExtensions []string             `yaml:"image_extensions" json:"image_extensions"`
	VideoExtensions []string             `yaml:"video_extensions" json:"video_extensions"`
	MatchMode       types.MatchMode      `yaml:"match_mode" json:"match_mode"`
	MaxDimension    int                  `yaml:"max_dimension" json:"max_dimension"`
	JPEGQuality     int                  `yaml:"jpeg_quality" json:"jpeg_quality"`
	CaptureTime     bool                 `yaml:"capture_time" json:"capture_time"`
	ConflictPolicy  types.ConflictPolicy `yaml:"conflict_policy" json:"conflict_policy"`
	Verify          bool                 `yaml:"verify" json:"verify"`
	HashVerify      bool                 `yaml:"hash_verify" json:"hash_verify"`
	LogFile         string               `yaml:"log_file" json:"log_file"`
	LogJSON         bool                 `yaml:"log_json" json:"log_json"`
}

func DefaultConfig() *Config {
	return &Config{
		ImageExtensions: []string{"jpg"},
		VideoExtensions: []string{"m4v"},
		MatchMode:       types.MatchSubstring,
		MaxDimension:    2048,
		JPEGQuality:     90,
		ConflictPolicy:  types.ConflictPolicyOverwrite,
	}
}

func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and fills defaults. The source must be an
// existing directory; the destination is only required to be non-empty.
func (c *Config) Validate() error {
	if c.Source == "" {
		return &ValidationError{Field: "source", Message: "input directory is required"}
	}
	if info, err := os.Stat(c.Source); err != nil || !info.IsDir() {
		return &ValidationError{Field: "source", Message: "<" + c.Source + "> is not a directory"}
	}
	if c.Dest == "" {
		return &ValidationError{Field: "dest", Message: "destination path must be supplied"}
	}

	switch c.MatchMode {
	case "":
		c.MatchMode = types.MatchSubstring
	case types.MatchSubstring, types.MatchSuffix:
	default:
		return &ValidationError{Field: "match_mode", Message: "must be substring or suffix"}
	}

	switch c.ConflictPolicy {
	case "":
		c.ConflictPolicy = types.ConflictPolicyOverwrite
	case types.ConflictPolicyOverwrite, types.ConflictPolicySkip, types.ConflictPolicyRename:
	default:
		return &ValidationError{Field: "conflict_policy", Message: "must be overwrite, skip or rename"}
	}

	if len(c.ImageExtensions) == 0 {
		c.ImageExtensions = []string{"jpg"}
	}
	if len(c.VideoExtensions) == 0 {
		c.VideoExtensions = []string{"m4v"}
	}
	if c.MaxDimension < 0 {
		c.MaxDimension = 0
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 90
	}

	return nil
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

