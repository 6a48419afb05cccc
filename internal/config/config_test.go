package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/On-Jun9/ShutterStamp/pkg/types"
)

func validationField(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	return validationErr.Field
}

// TestConfigValidate_RequiresSource는 테스트 코드 동작을 검증하거나 보조합니다.
func TestConfigValidate_RequiresSource(t *testing.T) {
	// source 누락은 ValidationError(field=source)로 반환되어야 한다.
	cfg := &Config{Dest: "/tmp/dest"}

	if field := validationField(t, cfg.Validate()); field != "source" {
		t.Fatalf("expected field source, got %s", field)
	}
}

// TestConfigValidate_SourceMustBeDirectory는 테스트 코드 동작을 검증하거나 보조합니다.
func TestConfigValidate_SourceMustBeDirectory(t *testing.T) {
	// 존재하지 않거나 파일인 source는 source 필드 에러여야 한다.
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "file.jpg")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, src := range []string{filepath.Join(tmpDir, "missing"), filePath} {
		cfg := &Config{Source: src, Dest: tmpDir}
		if field := validationField(t, cfg.Validate()); field != "source" {
			t.Fatalf("expected field source for %s, got %s", src, field)
		}
	}
}

// TestConfigValidate_RequiresDest는 테스트 코드 동작을 검증하거나 보조합니다.
func TestConfigValidate_RequiresDest(t *testing.T) {
	// dest 누락은 ValidationError(field=dest)로 반환되어야 한다.
	cfg := &Config{Source: t.TempDir()}

	if field := validationField(t, cfg.Validate()); field != "dest" {
		t.Fatalf("expected field dest, got %s", field)
	}
}

// TestConfigValidate_DoesNotRequireExistingDest는 테스트 코드 동작을 검증하거나 보조합니다.
func TestConfigValidate_DoesNotRequireExistingDest(t *testing.T) {
	// 목적지 디렉터리의 존재 여부는 검증하지 않아야 한다.
	cfg := &Config{Source: t.TempDir(), Dest: filepath.Join(t.TempDir(), "not-yet")}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

// TestConfigValidate_FillsDefaults는 테스트 코드 동작을 검증하거나 보조합니다.
func TestConfigValidate_FillsDefaults(t *testing.T) {
	// 기본값 자동 보정(match/conflict/extensions/quality)이 적용되어야 한다.
	cfg := &Config{
		Source:       t.TempDir(),
		Dest:         "/tmp/dest",
		MaxDimension: -5,
		JPEGQuality:  500,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if cfg.MatchMode != types.MatchSubstring {
		t.Fatalf("unexpected match mode: %s", cfg.MatchMode)
	}
	if cfg.ConflictPolicy != types.ConflictPolicyOverwrite {
		t.Fatalf("unexpected conflict policy: %s", cfg.ConflictPolicy)
	}
	if strings.Join(cfg.ImageExtensions, ",") != "jpg" || strings.Join(cfg.VideoExtensions, ",") != "m4v" {
		t.Fatalf("unexpected extensions: %v %v", cfg.ImageExtensions, cfg.VideoExtensions)
	}
	if cfg.MaxDimension != 0 || cfg.JPEGQuality != 90 {
		t.Fatalf("unexpected resize settings: %d %d", cfg.MaxDimension, cfg.JPEGQuality)
	}
}

// TestConfigValidate_RejectsUnknownEnums는 테스트 코드 동작을 검증하거나 보조합니다.
func TestConfigValidate_RejectsUnknownEnums(t *testing.T) {
	src := t.TempDir()

	cfg := &Config{Source: src, Dest: "/d", MatchMode: "regex"}
	if field := validationField(t, cfg.Validate()); field != "match_mode" {
		t.Fatalf("expected match_mode, got %s", field)
	}

	cfg = &Config{Source: src, Dest: "/d", ConflictPolicy: "quarantine"}
	if field := validationField(t, cfg.Validate()); field != "conflict_policy" {
		t.Fatalf("expected conflict_policy, got %s", field)
	}
}

// TestLoadFromFile_ReadsYAMLIntoConfig는 테스트 코드 동작을 검증하거나 보조합니다.
func TestLoadFromFile_ReadsYAMLIntoConfig(t *testing.T) {
	// YAML 파일 로드 시 명시 필드가 Config에 반영되고 나머지는 기본값이어야 한다.
	yamlContent := strings.Join([]string{
		"source: /data/source",
		"dest: /data/dest",
		"jpg_only: true",
		"max_dimension: 1024",
		"video_extensions: [m4v, mov]",
	}, "\n")

	filePath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(filePath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(filePath)
	if err != nil {
		t.Fatalf("load from file failed: %v", err)
	}
	if cfg.Source != "/data/source" || cfg.Dest != "/data/dest" || !cfg.JPGOnly {
		t.Fatalf("unexpected source/dest/jpg: %+v", cfg)
	}
	if cfg.MaxDimension != 1024 || strings.Join(cfg.VideoExtensions, ",") != "m4v,mov" {
		t.Fatalf("unexpected max_dimension/video_extensions: %+v", cfg)
	}
	if cfg.JPEGQuality != 90 || strings.Join(cfg.ImageExtensions, ",") != "jpg" {
		t.Fatalf("expected defaults to survive: %+v", cfg)
	}
}

// TestLoadFromFile_ReturnsReadError는 테스트 코드 동작을 검증하거나 보조합니다.
func TestLoadFromFile_ReturnsReadError(t *testing.T) {
	// 존재하지 않는 설정 파일은 read 에러를 반환해야 한다.
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected read error for missing config file")
	}
}

// TestLoadFromFile_ReturnsYAMLParseError는 테스트 코드 동작을 검증하거나 보조합니다.
func TestLoadFromFile_ReturnsYAMLParseError(t *testing.T) {
	// 잘못된 YAML 문법은 unmarshal 에러를 반환해야 한다.
	filePath := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(filePath, []byte("source: ["), 0644); err != nil {
		t.Fatalf("failed to write broken yaml: %v", err)
	}

	_, err := LoadFromFile(filePath)
	if err == nil {
		t.Fatal("expected yaml parse error")
	}
}

// TestValidationError_ErrorFormat는 테스트 코드 동작을 검증하거나 보조합니다.
func TestValidationError_ErrorFormat(t *testing.T) {
	// ValidationError.Error()는 "field: message" 형식을 반환해야 한다.
	err := (&ValidationError{Field: "source", Message: "is required"}).Error()
	if err != "source: is required" {
		t.Fatalf("unexpected validation error format: %s", err)
	}
}
