package resize

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeTestJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
}

func decodeSize(t *testing.T, path string) image.Point {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	return img.Bounds().Size()
}

// TestResize_ScalesLandscapeToMaxDimension는 테스트 코드 동작을 검증하거나 보조합니다.
func TestResize_ScalesLandscapeToMaxDimension(t *testing.T) {
	// 가로가 긴 이미지는 긴 변이 maxDim이 되도록 비율을 유지해 줄어야 한다.
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "wide.jpg")
	dest := filepath.Join(tmpDir, "out.jpg")
	writeTestJPEG(t, src, 400, 200)

	if err := New(100, 85, false).Resize(src, dest); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if got := decodeSize(t, dest); got != image.Pt(100, 50) {
		t.Fatalf("unexpected size: %v", got)
	}
	if _, err := os.Stat(dest + ".part"); !os.IsNotExist(err) {
		t.Fatalf("expected no part file, stat error=%v", err)
	}
}

// TestResize_ScalesPortraitByHeight는 테스트 코드 동작을 검증하거나 보조합니다.
func TestResize_ScalesPortraitByHeight(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "tall.jpg")
	dest := filepath.Join(tmpDir, "out.jpg")
	writeTestJPEG(t, src, 100, 400)

	if err := New(200, 0, false).Resize(src, dest); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if got := decodeSize(t, dest); got != image.Pt(50, 200) {
		t.Fatalf("unexpected size: %v", got)
	}
}

// TestResize_KeepsSmallImageSize는 테스트 코드 동작을 검증하거나 보조합니다.
func TestResize_KeepsSmallImageSize(t *testing.T) {
	// 이미 작은 이미지는 크기 변경 없이 다시 인코딩만 되어야 한다.
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "small.jpg")
	dest := filepath.Join(tmpDir, "out.jpg")
	writeTestJPEG(t, src, 30, 20)

	if err := New(2048, 90, false).Resize(src, dest); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if got := decodeSize(t, dest); got != image.Pt(30, 20) {
		t.Fatalf("unexpected size: %v", got)
	}
}

// TestResize_FailsForUndecodableSource는 테스트 코드 동작을 검증하거나 보조합니다.
func TestResize_FailsForUndecodableSource(t *testing.T) {
	// 디코딩할 수 없는 파일은 에러를 반환하고 목적지를 남기지 않아야 한다.
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "broken.jpg")
	dest := filepath.Join(tmpDir, "out.jpg")
	if err := os.WriteFile(src, []byte("not-an-image"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := New(100, 90, false).Resize(src, dest); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("expected no destination file, stat error=%v", err)
	}
}

// TestResize_DisabledReturnsErrDisabled는 테스트 코드 동작을 검증하거나 보조합니다.
func TestResize_DisabledReturnsErrDisabled(t *testing.T) {
	err := New(0, 90, false).Resize("a.jpg", "b.jpg")
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

// TestResize_UnknownOutputFormat는 테스트 코드 동작을 검증하거나 보조합니다.
func TestResize_UnknownOutputFormat(t *testing.T) {
	// 인코딩할 수 없는 확장자(m4v)는 출력 포맷 에러여야 한다.
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.jpg")
	writeTestJPEG(t, src, 10, 10)

	if err := New(100, 90, false).Resize(src, filepath.Join(tmpDir, "out.m4v")); err == nil {
		t.Fatal("expected output format error")
	}
}

// TestResize_DryRunDoesNotWrite는 테스트 코드 동작을 검증하거나 보조합니다.
func TestResize_DryRunDoesNotWrite(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.jpg")
	dest := filepath.Join(tmpDir, "out.jpg")
	writeTestJPEG(t, src, 10, 10)

	if err := New(100, 90, true).Resize(src, dest); err != nil {
		t.Fatalf("dry-run resize failed: %v", err)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("expected no destination file, stat error=%v", err)
	}
}
