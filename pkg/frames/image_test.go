package frames

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/framefx/pkg/canvas"
	"github.com/ivlev/framefx/pkg/config"
	"github.com/ivlev/framefx/pkg/loader"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "src.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func floatPtr(v float64) *float64 { return &v }

func renderOnce(t *testing.T, fs FrameSource, p float64) []*canvas.Object {
	t.Helper()
	var buf canvas.Buffer
	if err := fs.Render(p, &buf); err != nil {
		t.Fatal(err)
	}
	return buf.Objects()
}

func TestImageZoomIn(t *testing.T) {
	path := writeTestPNG(t, 256, 128)
	fs, err := NewImage(config.Layer{
		Type:          config.TypeImage,
		Path:          path,
		ZoomDirection: "in",
		ZoomAmount:    floatPtr(0.1),
		ResizeMode:    config.ResizeContain,
	}, 320, 240)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	// Zoom-in has no horizontal component: translation stays zero while the
	// scale grows from 1.0 to 1.1.
	start := renderOnce(t, fs, 0)
	if len(start) != 1 {
		t.Fatalf("contain mode emitted %d objects, want 1", len(start))
	}
	if math.Abs(start[0].ScaleX-1.0) > 1e-9 {
		t.Errorf("scale at progress 0 = %v, want 1.0", start[0].ScaleX)
	}
	if math.Abs(start[0].X-160) > 1e-9 {
		t.Errorf("x at progress 0 = %v, want centered 160", start[0].X)
	}

	end := renderOnce(t, fs, 1)
	if math.Abs(end[0].ScaleX-1.1) > 1e-9 {
		t.Errorf("scale at progress 1 = %v, want 1.1", end[0].ScaleX)
	}
	if math.Abs(end[0].X-160) > 1e-9 {
		t.Errorf("x at progress 1 = %v, want centered 160", end[0].X)
	}
}

func TestImagePanRight(t *testing.T) {
	path := writeTestPNG(t, 256, 128)
	fs, err := NewImage(config.Layer{
		Type:          config.TypeImage,
		Path:          path,
		ZoomDirection: "right",
		ZoomAmount:    floatPtr(0.1),
		ResizeMode:    config.ResizeCover,
	}, 320, 240)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	start := renderOnce(t, fs, 0)
	end := renderOnce(t, fs, 1)

	// Constant over-scale, symmetric 100px sweep.
	if math.Abs(start[0].ScaleX-1.4) > 1e-9 || math.Abs(end[0].ScaleX-1.4) > 1e-9 {
		t.Errorf("pan scale should hold 1.4, got %v and %v", start[0].ScaleX, end[0].ScaleX)
	}
	if math.Abs(start[0].X-(160-50)) > 1e-9 {
		t.Errorf("x at progress 0 = %v, want 110", start[0].X)
	}
	if math.Abs(end[0].X-(160+50)) > 1e-9 {
		t.Errorf("x at progress 1 = %v, want 210", end[0].X)
	}
}

func TestImageContainBlurEmitsBackdropFirst(t *testing.T) {
	path := writeTestPNG(t, 256, 128)
	fs, err := NewImage(config.Layer{
		Type:       config.TypeImage,
		Path:       path,
		ResizeMode: config.ResizeContainBlur,
	}, 320, 240)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	objs := renderOnce(t, fs, 0.5)
	if len(objs) != 2 {
		t.Fatalf("contain-blur emitted %d objects, want backdrop + foreground", len(objs))
	}

	// The backdrop covers the frame; the fitted foreground is smaller.
	if objs[0].Width < objs[1].Width && objs[0].Height < objs[1].Height {
		t.Error("backdrop should not be smaller than the foreground on both axes")
	}
}

func TestImageStretchScalesAxesIndependently(t *testing.T) {
	path := writeTestPNG(t, 100, 100)
	fs, err := NewImage(config.Layer{
		Type:          config.TypeImage,
		Path:          path,
		ZoomDirection: "none",
		ResizeMode:    config.ResizeStretch,
	}, 400, 100)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	objs := renderOnce(t, fs, 0)
	if len(objs) != 1 {
		t.Fatalf("stretch emitted %d objects, want 1", len(objs))
	}
	if math.Abs(objs[0].ScaleX-4.0) > 1e-9 || math.Abs(objs[0].ScaleY-1.0) > 1e-9 {
		t.Errorf("stretch scale = (%v, %v), want (4, 1)", objs[0].ScaleX, objs[0].ScaleY)
	}
}

func TestImageRequiresPath(t *testing.T) {
	if _, err := NewImage(config.Layer{Type: config.TypeImage}, 100, 100); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestImageMissingFile(t *testing.T) {
	layer := config.Layer{Type: config.TypeImage, Path: filepath.Join(t.TempDir(), "gone.png")}
	if _, err := NewImage(layer, 100, 100); !errors.Is(err, loader.ErrNotFound) {
		t.Errorf("expected loader.ErrNotFound, got %v", err)
	}
}

func TestOverlayPlacementAndSize(t *testing.T) {
	path := writeTestPNG(t, 100, 50)
	fs, err := NewOverlay(config.Layer{
		Type:     config.TypeImageOverlay,
		Path:     path,
		Position: "bottom-right",
		Width:    floatPtr(0.25),
	}, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	objs := renderOnce(t, fs, 1)
	if len(objs) != 1 {
		t.Fatalf("overlay emitted %d objects, want 1", len(objs))
	}
	o := objs[0]
	if o.OriginX != canvas.OriginRight || o.OriginY != canvas.OriginBottom {
		t.Errorf("overlay origins = (%v, %v), want bottom-right anchors", o.OriginX, o.OriginY)
	}
	// 25% of a 400px frame over a 100px source.
	if math.Abs(o.ScaleX-1.0) > 1e-9 {
		t.Errorf("overlay scale = %v, want 1.0", o.ScaleX)
	}
	if o.Opacity != 1 {
		t.Errorf("overlay opacity at progress 1 = %v, want 1", o.Opacity)
	}
}

func TestOverlayDelayHidesEarlyFrames(t *testing.T) {
	path := writeTestPNG(t, 100, 50)
	fs, err := NewOverlay(config.Layer{
		Type:  config.TypeImageOverlay,
		Path:  path,
		Delay: 0.5,
	}, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	if objs := renderOnce(t, fs, 0.2); len(objs) != 0 {
		t.Errorf("overlay visible before its delay: %d objects", len(objs))
	}
	if objs := renderOnce(t, fs, 0.9); len(objs) != 1 {
		t.Errorf("overlay missing after its delay: %d objects", len(objs))
	}
}

func TestQROverlay(t *testing.T) {
	fs, err := NewQR(config.Layer{
		Type: config.TypeQR,
		Text: "https://example.com",
	}, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Dispose()

	objs := renderOnce(t, fs, 1)
	if len(objs) != 1 {
		t.Fatalf("qr emitted %d objects, want 1", len(objs))
	}
	// Default ratio 0.2 of a 400px frame = 80px rendered size.
	rendered := objs[0].Width * objs[0].ScaleX
	if math.Abs(rendered-80) > 1.0 {
		t.Errorf("qr rendered width = %v, want ~80", rendered)
	}
}
