package poi

import (
	"bytes"
	"testing"
	"time"
)

// testImage builds a width*height image whose every byte encodes its row,
// so rows are distinguishable after extraction.
func testImage(t *testing.T, width, height int, opts Options) *Image {
	t.Helper()
	pix := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for i := 0; i < width*3; i++ {
			pix[y*width*3+i] = byte(y + 1)
		}
	}
	img, err := NewImage(pix, width, height, opts)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func rowByte(img *Image, y int) byte { return img.Line(y)[0] }

func TestNewImageValidation(t *testing.T) {
	if _, err := NewImage(make([]byte, 9), 3, 1, Options{}); err != nil {
		t.Errorf("valid 3x1 image rejected: %v", err)
	}
	if _, err := NewImage(make([]byte, 8), 3, 1, Options{}); err == nil {
		t.Error("short buffer accepted")
	}
	if _, err := NewImage(nil, 0, 0, Options{}); err == nil {
		t.Error("empty geometry accepted")
	}
}

func TestNewImageDefaultPeriod(t *testing.T) {
	img := testImage(t, 2, 1, Options{})
	if img.Period != DefaultPeriod {
		t.Errorf("zero period not defaulted: got %v", img.Period)
	}
	img = testImage(t, 2, 1, Options{Period: time.Millisecond})
	if img.Period != time.Millisecond {
		t.Errorf("explicit period overridden: got %v", img.Period)
	}
}

func TestLineNegativeIsBlank(t *testing.T) {
	img := testImage(t, 3, 4, Options{Loop: true})
	for _, y := range []int{-1, -2, -100} {
		line := img.Line(y)
		if len(line) != 3*img.Width {
			t.Fatalf("Line(%d) length %d, want %d", y, len(line), 3*img.Width)
		}
		if !bytes.Equal(line, make([]byte, len(line))) {
			t.Errorf("Line(%d) not blank", y)
		}
	}
}

func TestLineNoLoopEndsBlank(t *testing.T) {
	img := testImage(t, 3, 4, Options{})
	for y := 0; y < img.Limit(); y++ {
		if rowByte(img, y) == 0 {
			t.Errorf("valid row %d extracted blank", y)
		}
	}
	for y := img.Limit(); y < img.Limit()+5; y++ {
		if rowByte(img, y) != 0 {
			t.Errorf("row %d past limit not blank", y)
		}
	}
}

func TestLineLoopWraps(t *testing.T) {
	img := testImage(t, 3, 4, Options{Loop: true})
	for y := 0; y < 3*img.Limit(); y++ {
		want := byte(y%img.Height + 1)
		if got := rowByte(img, y); got != want {
			t.Errorf("Line(%d) row marker %d, want %d", y, got, want)
		}
	}
}

func TestLineMirrorSymmetry(t *testing.T) {
	img := testImage(t, 3, 5, Options{Loop: true, Mirror: true})
	if img.Limit() != 10 {
		t.Fatalf("mirror limit = %d, want 10", img.Limit())
	}
	for y := img.Height; y < img.Limit(); y++ {
		mirrored := 2*img.Height - 1 - y
		if !bytes.Equal(img.Line(y), img.Line(mirrored)) {
			t.Errorf("Line(%d) != Line(%d)", y, mirrored)
		}
	}
}

func TestLineMirrorNoLoopPlaysOnce(t *testing.T) {
	img := testImage(t, 3, 3, Options{Mirror: true})
	want := []byte{1, 2, 3, 3, 2, 1, 0, 0}
	for y, w := range want {
		if got := rowByte(img, y); got != w {
			t.Errorf("Line(%d) row marker %d, want %d", y, got, w)
		}
	}
}

func TestLineIdempotent(t *testing.T) {
	img := testImage(t, 3, 4, Options{Loop: true, Mirror: true})
	for _, y := range []int{-1, 0, 3, 5, 17} {
		a := append([]byte(nil), img.Line(y)...)
		b := img.Line(y)
		if !bytes.Equal(a, b) {
			t.Errorf("Line(%d) not stable across calls", y)
		}
	}
}
