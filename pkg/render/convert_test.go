package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/treeflow/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><circle cx="5" cy="5" r="2.5" fill="#555"/></svg>`

func TestConvertWithoutTool(t *testing.T) {
	if Available() {
		t.Skip("rsvg-convert is installed")
	}
	_, err := ToPNG([]byte(tinySVG), 2)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want UNSUPPORTED", err)
	}
	_, err = ToPDF([]byte(tinySVG))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
}

func TestConvert(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG([]byte(tinySVG), 0)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("ToPNG() did not return PNG data")
	}
	pdf, err := ToPDF([]byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("ToPDF() did not return PDF data")
	}
}

func TestConvertCancelled(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ToPNGContext(ctx, []byte(tinySVG), 1); err == nil {
		t.Error("ToPNGContext() with cancelled context should fail")
	}
}
